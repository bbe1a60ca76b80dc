package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbook-core/openbook/internal/account"
)

func TestService_Insert(t *testing.T) {
	type testCase struct {
		name      string
		acc       *account.Account
		setupMock func(m *account.MockRepository)
		wantField string
	}

	tests := []testCase{
		{
			name: "Success",
			acc:  &account.Account{Number: "411000", Label: "Clients", Currency: "EUR"},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "RootWithoutCurrency",
			acc:  &account.Account{Number: "4", Label: "Tiers", Root: true},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "BadNumber",
			acc:       &account.Account{Number: "X99", Label: "Bad"},
			wantField: "number",
		},
		{
			name:      "EmptyLabel",
			acc:       &account.Account{Number: "411000", Currency: "EUR"},
			wantField: "label",
		},
		{
			name:      "MissingCurrencyOnDetail",
			acc:       &account.Account{Number: "411000", Label: "Clients"},
			wantField: "currency",
		},
		{
			name:      "UnknownCurrency",
			acc:       &account.Account{Number: "411000", Label: "Clients", Currency: "ZZZ"},
			wantField: "currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := account.NewService(repo)
			err := svc.Insert(context.Background(), tt.acc)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var invalid *account.InvalidDataError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestService_IsDeletable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	repo.EXPECT().CountEntryRefs(gomock.Any(), "411000").Return(int64(0), nil)
	ok, err := svc.IsDeletable(context.Background(), "411000")
	require.NoError(t, err)
	assert.True(t, ok)

	// Soft-deleted entries still count as references.
	repo.EXPECT().CountEntryRefs(gomock.Any(), "411001").Return(int64(3), nil)
	ok, err = svc.IsDeletable(context.Background(), "411001")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_Delete_RefusedWhileReferenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	repo.EXPECT().CountEntryRefs(gomock.Any(), "411000").Return(int64(1), nil)

	err := svc.Delete(context.Background(), "411000")
	assert.ErrorIs(t, err, account.ErrNotDeletable)
}

func TestService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	repo.EXPECT().CountEntryRefs(gomock.Any(), "411000").Return(int64(0), nil)
	repo.EXPECT().DeleteAccount(gomock.Any(), "411000").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "411000"))
}

func TestService_GetDataset_MaskFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	all := []*account.Account{
		{Number: "4", Root: true},
		{Number: "411000", Settleable: true},
		{Number: "512000", Reconciliable: true},
	}

	mask := account.FlagReconciliable

	repo.EXPECT().
		ListAccounts(gomock.Any(), gomock.Any()).
		Return(all, nil)

	got, err := svc.GetDataset(context.Background(), account.ListFilter{Mask: &mask})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "512000", got[0].Number)
}

func TestService_ArchiveAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	date := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ArchiveAllBalances(gomock.Any(), date).Return(12, nil)

	n, err := svc.ArchiveAll(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestService_ArchiveBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	date := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetAccount(gomock.Any(), "411000").
		Return(&account.Account{Number: "411000", Label: "Clients", Currency: "EUR"}, nil)
	repo.EXPECT().ArchiveBalances(gomock.Any(), "411000", date).Return(nil)

	require.NoError(t, svc.ArchiveBalances(context.Background(), "411000", date))
}

func TestService_ArchiveBalances_RefusesRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	// no ArchiveBalances expectation: root accounts never reach the store,
	// same scope as the bulk archive
	repo.EXPECT().GetAccount(gomock.Any(), "4").
		Return(&account.Account{Number: "4", Label: "Tiers", Root: true}, nil)

	err := svc.ArchiveBalances(context.Background(), "4",
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))

	var invalid *account.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "number", invalid.Field)
}

func TestService_Update_PropagatesRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	repo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := svc.Update(context.Background(), &account.Account{Number: "411000", Label: "Clients", Currency: "EUR"})
	assert.Error(t, err)
}
