package bat

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// Format identifies a supported bank file layout.
type Format string

const (
	FormatFrCSV Format = "frcsv"
)

// ParsedLine is one transaction as read from the bank file, before any id
// is allocated.
type ParsedLine struct {
	DOpe     *time.Time
	DEffect  time.Time
	Ref      string
	Label    string
	Currency string
	Amount   decimal.Decimal
}

// ParsedFile is the outcome of running an Importer over a bank file.
type ParsedFile struct {
	Currency string
	Lines    []ParsedLine
}

// Importer turns one bank file layout into parsed lines.
type Importer interface {
	Parse(r io.Reader) (*ParsedFile, error)
}
