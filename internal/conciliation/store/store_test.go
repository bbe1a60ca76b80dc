package store_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbook-core/openbook/internal/conciliation"
	"github.com/openbook-core/openbook/internal/conciliation/store"
)

func newStoreWithMock(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_RemoveMember_DissolvesOnLastEntry(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT group_id FROM conciliation_members").
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}).AddRow(int64(7)))
	mock.ExpectExec("DELETE FROM conciliation_members").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// last entry member gone: the group row goes with it, cascading any
	// remaining bank lines back to unreconciled
	mock.ExpectExec("DELETE FROM conciliation_groups").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	dissolved, err := s.RemoveMember(context.Background(),
		conciliation.Member{Kind: conciliation.MemberEntry, ID: 42})
	require.NoError(t, err)
	assert.True(t, dissolved)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_RemoveMember_KeepsGroupWhileEntriesRemain(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT group_id FROM conciliation_members").
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}).AddRow(int64(7)))
	mock.ExpectExec("DELETE FROM conciliation_members").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectCommit()

	dissolved, err := s.RemoveMember(context.Background(),
		conciliation.Member{Kind: conciliation.MemberBatLine, ID: 17})
	require.NoError(t, err)
	assert.False(t, dissolved)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_RemoveMember_UnknownMember(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT group_id FROM conciliation_members").
		WillReturnRows(sqlmock.NewRows([]string{"group_id"}))
	mock.ExpectRollback()

	_, err := s.RemoveMember(context.Background(),
		conciliation.Member{Kind: conciliation.MemberEntry, ID: 99})
	assert.ErrorIs(t, err, conciliation.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
