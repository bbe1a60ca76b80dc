package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbook-core/openbook/internal/entry"
	"github.com/openbook-core/openbook/internal/entry/store"
)

var entryColumns = []string{
	"number", "label", "ref", "deffect", "dope", "account_number", "currency",
	"ledger", "ope_template", "debit", "credit", "status",
	"settlement_number", "settlement_stamp", "created_at", "updated_at",
}

func entryRows(status entry.Status) *sqlmock.Rows {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	return sqlmock.NewRows(entryColumns).AddRow(
		int64(9), "Facture 2024-001", "F2024-001", day, day, "411000", "EUR",
		"VEN", "", "100.00", "0", string(status),
		nil, nil, day, nil,
	)
}

func newStoreWithMock(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_ValidateEntry_MovesRoughToValidated(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(entryRows(entry.StatusRough))
	mock.ExpectExec("SET rough_debit = rough_debit").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET validated_debit = validated_debit").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE entries SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	e, err := s.ValidateEntry(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, entry.StatusValidated, e.Status)
	assert.True(t, e.Debit.Equal(decimal.RequireFromString("100.00")))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ValidateEntry_RefusedOutsideRough(t *testing.T) {
	for _, status := range []entry.Status{
		entry.StatusValidated, entry.StatusFuture, entry.StatusPast, entry.StatusDeleted,
	} {
		t.Run(string(status), func(t *testing.T) {
			s, mock := newStoreWithMock(t)

			// no account or entry update may run: the row lock read is the
			// last statement before rollback
			mock.ExpectBegin()
			mock.ExpectQuery("FOR UPDATE").WillReturnRows(entryRows(status))
			mock.ExpectRollback()

			_, err := s.ValidateEntry(context.Background(), 9)

			var ist *entry.InvalidStateTransitionError
			require.ErrorAs(t, err, &ist)
			assert.Equal(t, status, ist.From)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_DeleteEntry_RefusesValidated(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(entryRows(entry.StatusValidated))
	mock.ExpectRollback()

	_, err := s.DeleteEntry(context.Background(), 9)

	var ist *entry.InvalidStateTransitionError
	require.ErrorAs(t, err, &ist)
	assert.Equal(t, "delete", ist.Op)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteEntry_ReversesRoughPosting(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(entryRows(entry.StatusRough))
	mock.ExpectExec("SET rough_debit = rough_debit").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE entries SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	e, err := s.DeleteEntry(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, entry.StatusDeleted, e.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateEntry_MovesBucketOnReroute(t *testing.T) {
	s, mock := newStoreWithMock(t)

	// old posting sat in the rough bucket, the rewrite routes to FUTURE
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(entryRows(entry.StatusRough))
	mock.ExpectExec("SET rough_debit = rough_debit").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET future_debit = future_debit").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE entries").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	e := &entry.Entry{
		Number:   9,
		Label:    "Facture 2024-001",
		Ref:      "F2024-001",
		DEffect:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		DOpe:     time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Account:  "411000",
		Currency: "EUR",
		Ledger:   "VEN",
		Debit:    decimal.RequireFromString("100.00"),
		Status:   entry.StatusFuture,
	}

	require.NoError(t, s.UpdateEntry(context.Background(), e))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateEntry_RefusesNonEditable(t *testing.T) {
	s, mock := newStoreWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(entryRows(entry.StatusValidated))
	mock.ExpectRollback()

	e := &entry.Entry{Number: 9, Status: entry.StatusRough}

	err := s.UpdateEntry(context.Background(), e)

	var ist *entry.InvalidStateTransitionError
	require.ErrorAs(t, err, &ist)

	require.NoError(t, mock.ExpectationsWereMet())
}
