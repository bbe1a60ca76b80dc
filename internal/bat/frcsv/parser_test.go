package frcsv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbook-core/openbook/internal/bat/frcsv"
)

func TestParse_ReleveLayout(t *testing.T) {
	input := strings.Join([]string{
		"Relevé de compte n° 123",
		"",
		"Date opération;Date valeur;Libellé;Référence;Débit;Crédit",
		"09/03/2024;10/03/2024;VIR SEPA CLIENT DUPONT;F2024-001;;1 250,00",
		"11/03/2024;11/03/2024;PRLV EDF;EDF-889;88,40;",
		";;Solde au 31/03/2024;;;12 420,60",
	}, "\n")

	parsed, err := frcsv.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, parsed.Lines, 2)

	first := parsed.Lines[0]
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), first.DEffect)
	require.NotNil(t, first.DOpe)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), *first.DOpe)
	assert.Equal(t, "VIR SEPA CLIENT DUPONT", first.Label)
	assert.Equal(t, "F2024-001", first.Ref)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("1250.00")))

	second := parsed.Lines[1]
	assert.Equal(t, "PRLV EDF", second.Label)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("-88.40")), "debit comes out negative, got %s", second.Amount)
}

func TestParse_SimpleLayout(t *testing.T) {
	input := strings.Join([]string{
		"Date;Libellé;Montant",
		"10/03/2024;CB BOULANGERIE;-12,50",
		"12/03/2024;VIR RECU;1.000,00",
	}, "\n")

	parsed, err := frcsv.New().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, parsed.Lines, 2)

	assert.True(t, parsed.Lines[0].Amount.Equal(decimal.RequireFromString("-12.50")))
	assert.True(t, parsed.Lines[1].Amount.Equal(decimal.RequireFromString("1000.00")))
	assert.Nil(t, parsed.Lines[0].DOpe)
}

func TestParse_NoMatchingLayout(t *testing.T) {
	input := "foo;bar\n1;2\n"

	_, err := frcsv.New().Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParse_MissingLabelFails(t *testing.T) {
	input := strings.Join([]string{
		"Date;Libellé;Montant",
		"10/03/2024;;-12,50",
	}, "\n")

	_, err := frcsv.New().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing label")
}

func TestParse_Latin1Input(t *testing.T) {
	// Windows-1252 header: "Date;Libellé;Montant" with é = 0xE9.
	header := append([]byte("Date;Libell"), 0xE9)
	header = append(header, []byte(";Montant\n10/03/2024;ACHAT;-5,00\n")...)

	parsed, err := frcsv.New().Parse(strings.NewReader(string(header)))
	require.NoError(t, err)
	require.Len(t, parsed.Lines, 1)
	assert.Equal(t, "ACHAT", parsed.Lines[0].Label)
}
