package settlement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbook-core/openbook/internal/settlement"
)

func newServiceWithMock(t *testing.T) (*settlement.Service, *settlement.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := settlement.NewMockRepository(ctrl)

	return settlement.NewService(repo), repo
}

func TestService_Create_RejectsEmptySet(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	_, err := svc.Create(context.Background(), nil)

	var invalid *settlement.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "entries", invalid.Field)
}

func TestService_Create_OK(t *testing.T) {
	svc, repo := newServiceWithMock(t)

	want := &settlement.Settlement{Number: 5, Account: "411000", Entries: []uint64{1, 2}}

	repo.EXPECT().
		CreateSettlement(gomock.Any(), []uint64{1, 2}).
		Return(want, nil)

	got, err := svc.Create(context.Background(), []uint64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Create_RejectsDuplicates(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	// no repository expectation: the duplicate must be caught before the
	// store starts counting candidates
	_, err := svc.Create(context.Background(), []uint64{1, 2, 1})

	var invalid *settlement.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "entries", invalid.Field)
	assert.Contains(t, invalid.Reason, "duplicate entry 1")
}

func TestService_Extend_RejectsDuplicates(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	_, err := svc.Extend(context.Background(), 5, []uint64{3, 3})

	var invalid *settlement.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "entries", invalid.Field)
}

func TestService_Create_AlreadySettledSurfaces(t *testing.T) {
	svc, repo := newServiceWithMock(t)

	repo.EXPECT().
		CreateSettlement(gomock.Any(), []uint64{1}).
		Return(nil, settlement.ErrAlreadySettled)

	_, err := svc.Create(context.Background(), []uint64{1})
	assert.ErrorIs(t, err, settlement.ErrAlreadySettled)
}

func TestService_Extend(t *testing.T) {
	svc, repo := newServiceWithMock(t)

	want := &settlement.Settlement{Number: 5, Account: "411000", Entries: []uint64{1, 2, 3}}

	repo.EXPECT().
		ExtendSettlement(gomock.Any(), uint64(5), []uint64{3}).
		Return(want, nil)

	got, err := svc.Extend(context.Background(), 5, []uint64{3})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, got.Entries)
}

func TestService_Extend_RejectsEmptySet(t *testing.T) {
	svc, _ := newServiceWithMock(t)

	_, err := svc.Extend(context.Background(), 5, nil)

	var invalid *settlement.InvalidDataError
	assert.ErrorAs(t, err, &invalid)
}

func TestService_Dissolve(t *testing.T) {
	svc, repo := newServiceWithMock(t)

	repo.EXPECT().DissolveSettlement(gomock.Any(), uint64(5)).Return(3, nil)

	n, err := svc.Dissolve(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
