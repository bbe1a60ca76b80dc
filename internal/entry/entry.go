package entry

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an entry. FUTURE is entered directly at
// creation time when the effect date lands beyond the exercice end; it is
// never reached through ROUGH or VALIDATED.
type Status string

const (
	StatusPast      Status = "past"
	StatusRough     Status = "rough"
	StatusValidated Status = "validated"
	StatusDeleted   Status = "deleted"
	StatusFuture    Status = "future"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPast, StatusRough, StatusValidated, StatusDeleted, StatusFuture:
		return true
	}

	return false
}

var ErrNotFound = errors.New("entry not found")

// InvalidDataError names the first offending field of a rejected entry.
type InvalidDataError struct {
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid entry data: %s: %s", e.Field, e.Reason)
}

// InvalidStateTransitionError reports an operation requested in a state
// that forbids it. Balances are guaranteed untouched when it is returned.
type InvalidStateTransitionError struct {
	Number uint64
	From   Status
	Op     string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("entry %d: cannot %s from status %s", e.Number, e.Op, e.From)
}

// Entry is one debit-or-credit movement against one detail account.
// Number is allocated at insert time and immutable afterwards.
type Entry struct {
	Number      uint64
	Label       string
	Ref         string
	DEffect     time.Time
	DOpe        time.Time
	Account     string
	Currency    string
	Ledger      string
	OpeTemplate string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Status      Status

	// SettlementNumber is zero while the entry is unsettled.
	SettlementNumber uint64
	SettlementStamp  *time.Time

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewWithData builds an entry and checks it, returning the first offending
// field on failure. The entry is not persisted and carries no number yet.
func NewWithData(label, ref string, deffect, dope time.Time, accountNumber, currency, ledger, opeTemplate string, debit, credit decimal.Decimal) (*Entry, error) {
	e := &Entry{
		Label:       label,
		Ref:         ref,
		DEffect:     deffect,
		DOpe:        dope,
		Account:     accountNumber,
		Currency:    currency,
		Ledger:      ledger,
		OpeTemplate: opeTemplate,
		Debit:       debit,
		Credit:      credit,
	}

	if err := e.ValidateData(); err != nil {
		return nil, err
	}

	return e, nil
}

// ValidateData runs the local checks only; referential checks (account
// exists and accepts postings, ledger exists) happen at insert time.
func (e *Entry) ValidateData() error {
	if e.Label == "" {
		return &InvalidDataError{Field: "label", Reason: "must not be empty"}
	}

	if e.DEffect.IsZero() {
		return &InvalidDataError{Field: "deffect", Reason: "must be a valid date"}
	}

	if e.DOpe.IsZero() {
		return &InvalidDataError{Field: "dope", Reason: "must be a valid date"}
	}

	if e.Account == "" {
		return &InvalidDataError{Field: "account", Reason: "must not be empty"}
	}

	if e.Currency == "" {
		return &InvalidDataError{Field: "currency", Reason: "must not be empty"}
	}

	if money.GetCurrency(e.Currency) == nil {
		return &InvalidDataError{Field: "currency", Reason: "unknown currency code"}
	}

	if e.Ledger == "" {
		return &InvalidDataError{Field: "ledger", Reason: "must not be empty"}
	}

	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return &InvalidDataError{Field: "amount", Reason: "must not be negative"}
	}

	if e.Debit.IsZero() == e.Credit.IsZero() {
		return &InvalidDataError{Field: "amount", Reason: "exactly one of debit/credit must be set"}
	}

	return nil
}

// IsValid reports whether the entry data passes the local checks.
func (e *Entry) IsValid() bool {
	return e.ValidateData() == nil
}

// IsEditable is true only for ROUGH and FUTURE entries. VALIDATED, PAST and
// DELETED entries are read-only at the engine level; settlement and
// conciliation linkage are the only exceptions.
func (e *Entry) IsEditable() bool {
	return e.Status == StatusRough || e.Status == StatusFuture
}

// IsSettled reports whether the entry belongs to a settlement group.
func (e *Entry) IsSettled() bool {
	return e.SettlementNumber != 0
}
