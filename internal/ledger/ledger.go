package ledger

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("ledger not found")

// InvalidDataError names the first offending field of a rejected ledger.
type InvalidDataError struct {
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid ledger data: %s: %s", e.Field, e.Reason)
}

// Ledger is a named stream grouping entries by business process
// (purchases, sales, bank...).
type Ledger struct {
	Mnemo     string
	Label     string
	Notes     string
	LastClose *time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (l *Ledger) validate() error {
	if l.Mnemo == "" {
		return &InvalidDataError{Field: "mnemo", Reason: "must not be empty"}
	}

	if l.Label == "" {
		return &InvalidDataError{Field: "label", Reason: "must not be empty"}
	}

	return nil
}
