package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbook-core/openbook/internal/ledger"
)

func newServiceWithMock(t *testing.T) (*ledger.Service, *ledger.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := ledger.NewMockRepository(ctrl)

	return ledger.NewService(repo), repo
}

func TestService_Insert_ValidatesFields(t *testing.T) {
	tests := []struct {
		name      string
		ledger    ledger.Ledger
		wantField string
	}{
		{"EmptyMnemo", ledger.Ledger{Label: "Ventes"}, "mnemo"},
		{"EmptyLabel", ledger.Ledger{Mnemo: "VEN"}, "label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newServiceWithMock(t)

			err := svc.Insert(context.Background(), &tt.ledger)

			var invalid *ledger.InvalidDataError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}

func TestService_Insert_OK(t *testing.T) {
	svc, repo := newServiceWithMock(t)

	l := &ledger.Ledger{Mnemo: "VEN", Label: "Ventes"}
	repo.EXPECT().CreateLedger(gomock.Any(), l).Return(nil)

	assert.NoError(t, svc.Insert(context.Background(), l))
}

func TestService_Exists(t *testing.T) {
	svc, repo := newServiceWithMock(t)

	repo.EXPECT().LedgerExists(gomock.Any(), "VEN").Return(true, nil)

	ok, err := svc.Exists(context.Background(), "VEN")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_Close(t *testing.T) {
	svc, repo := newServiceWithMock(t)

	date := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().SetLastClose(gomock.Any(), "VEN", date).Return(nil)

	assert.NoError(t, svc.Close(context.Background(), "VEN", date))
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func balancedBuckets() ledger.Buckets {
	return ledger.Buckets{
		ValidatedDebit:  d("100"),
		ValidatedCredit: d("0"),
		RoughDebit:      d("25.50"),
		RoughCredit:     d("0"),
		FutureDebit:     decimal.Zero,
		FutureCredit:    decimal.Zero,
	}
}

func TestBalanceEngine_Check_Clean(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := ledger.NewMockRepository(ctrl)
	engine := ledger.NewBalanceEngine(repo)

	repo.EXPECT().CompareBuckets(gomock.Any()).Return([]ledger.AccountComparison{
		{Number: "411000", Stored: balancedBuckets(), Computed: balancedBuckets()},
	}, nil)
	repo.EXPECT().EntryTotals(gomock.Any()).Return(ledger.Totals{
		Debit:  d("125.50"),
		Credit: d("125.50"),
	}, nil)

	report, err := engine.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.Discrepancies)
}

func TestBalanceEngine_Check_ReportsDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := ledger.NewMockRepository(ctrl)
	engine := ledger.NewBalanceEngine(repo)

	stored := balancedBuckets()
	computed := balancedBuckets()
	computed.RoughDebit = d("30.00")

	repo.EXPECT().CompareBuckets(gomock.Any()).Return([]ledger.AccountComparison{
		{Number: "411000", Stored: stored, Computed: computed},
	}, nil)
	repo.EXPECT().EntryTotals(gomock.Any()).Return(ledger.Totals{
		Debit:  d("130"),
		Credit: d("125.50"),
	}, nil)

	report, err := engine.Check(context.Background())
	require.NoError(t, err)

	assert.False(t, report.OK())
	assert.False(t, report.Balanced)
	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "411000", report.Discrepancies[0].Account)
	assert.Equal(t, "rough_debit", report.Discrepancies[0].Bucket)
	assert.True(t, report.Discrepancies[0].Stored.Equal(d("25.50")))
	assert.True(t, report.Discrepancies[0].Computed.Equal(d("30.00")))
}

func TestBalanceEngine_Check_ScaleInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := ledger.NewMockRepository(ctrl)
	engine := ledger.NewBalanceEngine(repo)

	stored := balancedBuckets()
	computed := balancedBuckets()
	computed.ValidatedDebit = d("100.00000") // NUMERIC scale padding

	repo.EXPECT().CompareBuckets(gomock.Any()).Return([]ledger.AccountComparison{
		{Number: "411000", Stored: stored, Computed: computed},
	}, nil)
	repo.EXPECT().EntryTotals(gomock.Any()).Return(ledger.Totals{
		Debit:  d("125.50"),
		Credit: d("125.50"),
	}, nil)

	report, err := engine.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
}
