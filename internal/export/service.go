package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/openbook-core/openbook/internal/entry"
)

// EntryLister is the slice of the entry service the exporter needs.
type EntryLister interface {
	GetDataset(ctx context.Context, filter entry.ListFilter) ([]*entry.Entry, error)
}

// Service writes entry datasets as semicolon-separated CSV, the format the
// rest of the accounting tooling round-trips.
type Service struct {
	entries EntryLister
}

func NewService(entries EntryLister) *Service {
	return &Service{entries: entries}
}

var csvHeader = []string{
	"number", "label", "ref", "deffect", "dope",
	"account", "currency", "ledger", "ope_template",
	"debit", "credit", "status", "settlement_number", "settlement_stamp",
}

// WriteCSV streams the entries matching the filter to w and returns how
// many rows were written, header excluded.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, filter entry.ListFilter) (int, error) {
	entries, err := s.entries.GetDataset(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("listing entries: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(toRecord(e)); err != nil {
			return i, fmt.Errorf("writing entry %d: %w", e.Number, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return len(entries), fmt.Errorf("flushing csv: %w", err)
	}

	return len(entries), nil
}

// Filename derives a download name like entries_20240310.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("entries_%s.csv", now.Format("20060102"))
}

func toRecord(e *entry.Entry) []string {
	settlementNumber := ""
	settlementStamp := ""

	if e.IsSettled() {
		settlementNumber = fmt.Sprintf("%d", e.SettlementNumber)
	}

	if e.SettlementStamp != nil {
		settlementStamp = e.SettlementStamp.UTC().Format(time.RFC3339)
	}

	return []string{
		fmt.Sprintf("%d", e.Number),
		e.Label,
		e.Ref,
		e.DEffect.Format(time.DateOnly),
		e.DOpe.Format(time.DateOnly),
		e.Account,
		e.Currency,
		e.Ledger,
		e.OpeTemplate,
		e.Debit.String(),
		e.Credit.String(),
		string(e.Status),
		settlementNumber,
		settlementStamp,
	}
}
