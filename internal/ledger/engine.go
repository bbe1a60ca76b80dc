package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Buckets mirrors the six current-period amount columns of an account.
type Buckets struct {
	ValidatedDebit  decimal.Decimal
	ValidatedCredit decimal.Decimal
	RoughDebit      decimal.Decimal
	RoughCredit     decimal.Decimal
	FutureDebit     decimal.Decimal
	FutureCredit    decimal.Decimal
}

// AccountComparison pairs the stored buckets of one detail account with the
// buckets reconstructed from its entries.
type AccountComparison struct {
	Number   string
	Stored   Buckets
	Computed Buckets
}

// Totals sums debit and credit over the live (validated + rough) entries.
type Totals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Discrepancy is one bucket of one account whose stored value drifted from
// the entry-reconstructed value.
type Discrepancy struct {
	Account  string
	Bucket   string
	Stored   decimal.Decimal
	Computed decimal.Decimal
}

// CheckReport is the outcome of a full balance check.
type CheckReport struct {
	Discrepancies []Discrepancy
	Totals        Totals
	Balanced      bool
}

// OK reports whether stored buckets match the entries and debits equal
// credits globally.
func (r *CheckReport) OK() bool {
	return r.Balanced && len(r.Discrepancies) == 0
}

// BalanceEngine validates account and ledger balances against the entry
// set. It never mutates; repairs are a deliberate, separate operation.
type BalanceEngine struct {
	repo Repository
}

func NewBalanceEngine(repo Repository) *BalanceEngine {
	return &BalanceEngine{repo: repo}
}

// Check reconstructs every detail account's buckets from its entries,
// compares them with the stored columns and verifies global debit=credit.
func (e *BalanceEngine) Check(ctx context.Context) (*CheckReport, error) {
	comparisons, err := e.repo.CompareBuckets(ctx)
	if err != nil {
		return nil, err
	}

	report := &CheckReport{}

	for _, c := range comparisons {
		report.Discrepancies = append(report.Discrepancies, diffBuckets(c)...)
	}

	totals, err := e.repo.EntryTotals(ctx)
	if err != nil {
		return nil, err
	}

	report.Totals = totals
	report.Balanced = totals.Debit.Equal(totals.Credit)

	return report, nil
}

func diffBuckets(c AccountComparison) []Discrepancy {
	pairs := []struct {
		name     string
		stored   decimal.Decimal
		computed decimal.Decimal
	}{
		{"validated_debit", c.Stored.ValidatedDebit, c.Computed.ValidatedDebit},
		{"validated_credit", c.Stored.ValidatedCredit, c.Computed.ValidatedCredit},
		{"rough_debit", c.Stored.RoughDebit, c.Computed.RoughDebit},
		{"rough_credit", c.Stored.RoughCredit, c.Computed.RoughCredit},
		{"future_debit", c.Stored.FutureDebit, c.Computed.FutureDebit},
		{"future_credit", c.Stored.FutureCredit, c.Computed.FutureCredit},
	}

	var diffs []Discrepancy

	for _, p := range pairs {
		if !p.stored.Equal(p.computed) {
			diffs = append(diffs, Discrepancy{
				Account:  c.Number,
				Bucket:   p.name,
				Stored:   p.stored,
				Computed: p.computed,
			})
		}
	}

	return diffs
}
