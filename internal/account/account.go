package account

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// MaxNumberLength bounds the hierarchical account number.
const MaxNumberLength = 64

// Flag bits for IsAllowed masks. UI layers restrict selectable accounts by
// ORing the flags they accept.
type Flag uint8

const (
	FlagRoot Flag = 1 << iota
	FlagDetail
	FlagSettleable
	FlagReconciliable
	FlagForwardable
	FlagClosed
)

// Account is one chart-of-accounts node. Only detail accounts accumulate
// entry amounts; root accounts aggregate through the number hierarchy.
type Account struct {
	Number        string
	Label         string
	Currency      string
	Notes         string
	Root          bool
	Settleable    bool
	Reconciliable bool
	Forwardable   bool
	Closed        bool

	ValidatedDebit  decimal.Decimal
	ValidatedCredit decimal.Decimal
	RoughDebit      decimal.Decimal
	RoughCredit     decimal.Decimal
	FutureDebit     decimal.Decimal
	FutureCredit    decimal.Decimal

	// DEffect is the max effect date ever posted to this account.
	DEffect *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ArchivedBalance is one period-end snapshot row.
type ArchivedBalance struct {
	Date   time.Time
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Class returns the account class, the first digit of the number.
func (a *Account) Class() int {
	if a.Number == "" {
		return 0
	}

	return int(a.Number[0] - '0')
}

func (a *Account) IsDetail() bool { return !a.Root }

func (a *Account) Flags() Flag {
	var f Flag

	if a.Root {
		f |= FlagRoot
	} else {
		f |= FlagDetail
	}

	if a.Settleable {
		f |= FlagSettleable
	}

	if a.Reconciliable {
		f |= FlagReconciliable
	}

	if a.Forwardable {
		f |= FlagForwardable
	}

	if a.Closed {
		f |= FlagClosed
	}

	return f
}

// IsAllowed reports whether the account matches any flag of the mask.
func (a *Account) IsAllowed(mask Flag) bool {
	return a.Flags()&mask != 0
}

// IsChildOf reports whether the account sits under parent in the
// prefix hierarchy. An account is not its own child.
func (a *Account) IsChildOf(parent string) bool {
	return parent != "" && a.Number != parent && strings.HasPrefix(a.Number, parent)
}

// GlobalSolde is the net of all six current buckets, debit minus credit.
func (a *Account) GlobalSolde() decimal.Decimal {
	debit := a.ValidatedDebit.Add(a.RoughDebit).Add(a.FutureDebit)
	credit := a.ValidatedCredit.Add(a.RoughCredit).Add(a.FutureCredit)

	return debit.Sub(credit)
}

// GlobalDeffect is the max effect date touched across all buckets, nil if
// nothing was ever posted.
func (a *Account) GlobalDeffect() *time.Time {
	return a.DEffect
}

// ValidNumber reports whether s is usable as an account number: non-empty,
// within the length bound, leading digit (the class).
func ValidNumber(s string) bool {
	if s == "" || len(s) > MaxNumberLength {
		return false
	}

	return unicode.IsDigit(rune(s[0]))
}
