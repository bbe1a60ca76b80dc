package frcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbook-core/openbook/internal/bat"
	enc "github.com/openbook-core/openbook/internal/encoding"
)

// Parser reads French bank CSV exports and produces bank transaction
// lines. It auto-detects which layout is being used by matching column
// headers against known profiles.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*bat.ParsedFile, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching bank csv layout found")
	}

	lines, err := parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
	if err != nil {
		return nil, err
	}

	return &bat.ParsedFile{Lines: lines}, nil
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts lines from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]bat.ParsedLine, error) {
	var lines []bat.ParsedLine

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		deffect, ok := parseDate(row, cols[p.DEffectCol])
		if !ok {
			// footer or separator row
			continue
		}

		label := cellValue(row, cols[p.LabelCol])
		if label == "" {
			return nil, fmt.Errorf("row %d: missing label", rowNum)
		}

		amount, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		line := bat.ParsedLine{
			DEffect: deffect,
			Label:   label,
			Amount:  amount,
		}

		if p.DOpeCol != "" {
			if dope, ok := parseDate(row, cols[p.DOpeCol]); ok {
				line.DOpe = &dope
			}
		}

		if p.RefCol != "" {
			line.Ref = cellValue(row, cols[p.RefCol])
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// parseDate tries dd/mm/yyyy then dd-mm-yyyy. Returns false for empty or
// unparseable cells (footer rows, running totals).
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{"02/01/2006", "02-01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, bool) {
	switch p.AmountMode {
	case amountSingle:
		return parseSingleAmount(row, cols[p.AmountCol])
	case amountSplit:
		return parseSplitAmount(row, cols[p.DebitCol], cols[p.CreditCol])
	}

	return decimal.Zero, false
}

// parseSingleAmount handles one signed amount column.
func parseSingleAmount(row []string, idx int) (decimal.Decimal, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := parseEuropeanAmount(s)
	if err != nil || d.IsZero() {
		return decimal.Zero, false
	}

	return d, true
}

// parseSplitAmount handles separate debit/credit columns: debit comes out
// negative, credit positive.
func parseSplitAmount(row []string, debitIdx, creditIdx int) (decimal.Decimal, bool) {
	if s := cellValue(row, debitIdx); s != "" {
		if d, err := parseEuropeanAmount(s); err == nil && !d.IsZero() {
			return d.Abs().Neg(), true
		}
	}

	if s := cellValue(row, creditIdx); s != "" {
		if d, err := parseEuropeanAmount(s); err == nil && !d.IsZero() {
			return d.Abs(), true
		}
	}

	return decimal.Zero, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
