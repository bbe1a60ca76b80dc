package entry_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbook-core/openbook/internal/entry"
)

var (
	d100 = decimal.RequireFromString("100.00")
	zero = decimal.Zero
)

func validEntry() *entry.Entry {
	return &entry.Entry{
		Label:    "Facture 2024-001",
		Ref:      "F2024-001",
		DEffect:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		DOpe:     time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Account:  "411000",
		Currency: "EUR",
		Ledger:   "VEN",
		Debit:    d100,
		Credit:   zero,
	}
}

func TestValidateData_FirstOffendingField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(e *entry.Entry)
		wantField string
	}{
		{"EmptyLabel", func(e *entry.Entry) { e.Label = "" }, "label"},
		{"ZeroDEffect", func(e *entry.Entry) { e.DEffect = time.Time{} }, "deffect"},
		{"ZeroDOpe", func(e *entry.Entry) { e.DOpe = time.Time{} }, "dope"},
		{"EmptyAccount", func(e *entry.Entry) { e.Account = "" }, "account"},
		{"EmptyCurrency", func(e *entry.Entry) { e.Currency = "" }, "currency"},
		{"UnknownCurrency", func(e *entry.Entry) { e.Currency = "ZZZ" }, "currency"},
		{"EmptyLedger", func(e *entry.Entry) { e.Ledger = "" }, "ledger"},
		{"BothAmounts", func(e *entry.Entry) { e.Credit = d100 }, "amount"},
		{"NoAmount", func(e *entry.Entry) { e.Debit = zero }, "amount"},
		{"NegativeAmount", func(e *entry.Entry) { e.Debit = d100.Neg() }, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(e)

			err := e.ValidateData()

			var invalid *entry.InvalidDataError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
			assert.False(t, e.IsValid())
		})
	}
}

func TestValidateData_OK(t *testing.T) {
	e := validEntry()
	require.NoError(t, e.ValidateData())
	assert.True(t, e.IsValid())

	// credit-only leg is just as valid
	e.Debit, e.Credit = zero, d100
	assert.NoError(t, e.ValidateData())
}

func TestNewWithData(t *testing.T) {
	e, err := entry.NewWithData(
		"Facture", "F-1",
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		"411000", "EUR", "VEN", "",
		d100, zero,
	)
	require.NoError(t, err)
	assert.Zero(t, e.Number)
	assert.Empty(t, e.Status)

	_, err = entry.NewWithData("", "", time.Time{}, time.Time{}, "", "", "", "", zero, zero)
	assert.Error(t, err)
}

func TestEntry_IsEditable(t *testing.T) {
	tests := []struct {
		status entry.Status
		want   bool
	}{
		{entry.StatusRough, true},
		{entry.StatusFuture, true},
		{entry.StatusValidated, false},
		{entry.StatusPast, false},
		{entry.StatusDeleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			e := &entry.Entry{Status: tt.status}
			assert.Equal(t, tt.want, e.IsEditable())
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, entry.StatusRough.Valid())
	assert.True(t, entry.StatusPast.Valid())
	assert.False(t, entry.Status("draft").Valid())
	assert.False(t, entry.Status("").Valid())
}

func TestEntry_IsSettled(t *testing.T) {
	e := &entry.Entry{}
	assert.False(t, e.IsSettled())

	e.SettlementNumber = 7
	assert.True(t, e.IsSettled())
}
