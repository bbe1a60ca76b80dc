package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbook-core/openbook/internal/entry"
	"github.com/openbook-core/openbook/internal/export"
)

type stubLister struct {
	entries []*entry.Entry
	filter  entry.ListFilter
}

func (s *stubLister) GetDataset(_ context.Context, filter entry.ListFilter) ([]*entry.Entry, error) {
	s.filter = filter
	return s.entries, nil
}

func testEntries() []*entry.Entry {
	stamp := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	return []*entry.Entry{
		{
			Number:   1,
			Label:    "Facture 2024-001",
			Ref:      "F2024-001",
			DEffect:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			DOpe:     time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
			Account:  "411000",
			Currency: "EUR",
			Ledger:   "VEN",
			Debit:    decimal.RequireFromString("100.00"),
			Credit:   decimal.Zero,
			Status:   entry.StatusValidated,

			SettlementNumber: 7,
			SettlementStamp:  &stamp,
		},
		{
			Number:   2,
			Label:    "Règlement",
			DEffect:  time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			DOpe:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			Account:  "512000",
			Currency: "EUR",
			Ledger:   "BNQ",
			Debit:    decimal.Zero,
			Credit:   decimal.RequireFromString("100.00"),
			Status:   entry.StatusRough,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	lister := &stubLister{entries: testEntries()}
	svc := export.NewService(lister)

	var buf bytes.Buffer

	n, err := svc.WriteCSV(context.Background(), &buf, entry.ListFilter{Ledger: "VEN"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "VEN", lister.filter.Ledger)

	r := csv.NewReader(&buf)
	r.Comma = ';'

	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 entries

	assert.Equal(t, "number", rows[0][0])

	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "Facture 2024-001", first[1])
	assert.Equal(t, "2024-03-10", first[3])
	assert.Equal(t, "100", first[9])
	assert.Equal(t, "validated", first[11])
	assert.Equal(t, "7", first[12])
	assert.Equal(t, "2024-04-01T10:00:00Z", first[13])

	second := rows[2]
	assert.Equal(t, "", second[12], "unsettled entry has no settlement number")
}

func TestWriteCSV_Empty(t *testing.T) {
	svc := export.NewService(&stubLister{})

	var buf bytes.Buffer

	n, err := svc.WriteCSV(context.Background(), &buf, entry.ListFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), "number;label")
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "entries_20240310.csv", export.Filename(now))
}
