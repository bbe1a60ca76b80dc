package bat

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("bat file not found")

	// ErrNotDeletable is returned when deleting a file whose lines are
	// still reconciled against entries.
	ErrNotDeletable = errors.New("bat file has reconciled lines")
)

// InvalidDataError names the first offending field of a rejected import.
type InvalidDataError struct {
	Field  string
	Reason string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid bat data: %s: %s", e.Field, e.Reason)
}

// File is one imported bank account transaction file. ImportID tags every
// import attempt so re-imports of the same URI stay distinguishable.
type File struct {
	ID        uint64
	ImportID  uuid.UUID
	URI       string
	Format    Format
	Currency  string
	Begin     *time.Time
	End       *time.Time
	LineCount int
	CreatedAt time.Time
}

// Line is one bank transaction. Amount keeps the bank's sign: negative for
// money out, positive for money in.
type Line struct {
	ID       uint64
	BatID    uint64
	DOpe     *time.Time
	DEffect  time.Time
	Ref      string
	Label    string
	Currency string
	Amount   decimal.Decimal
}
