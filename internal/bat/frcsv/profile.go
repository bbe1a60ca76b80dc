package frcsv

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Montant" with value "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of one French bank CSV export.
// Supporting another bank is just another Profile in the profiles slice.
type Profile struct {
	Name       string
	DEffectCol string
	DOpeCol    string // optional operation date, empty when absent
	LabelCol   string
	RefCol     string // optional
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountSingle
	DebitCol   string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this
// profile to match. Optional columns never participate in detection.
func (p Profile) requiredCols() []string {
	cols := []string{p.DEffectCol, p.LabelCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of layouts to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "releve",
		DEffectCol: "Date valeur",
		DOpeCol:    "Date opération",
		LabelCol:   "Libellé",
		RefCol:     "Référence",
		AmountMode: amountSplit,
		DebitCol:   "Débit",
		CreditCol:  "Crédit",
	},
	{
		Name:       "export",
		DEffectCol: "Date valeur",
		DOpeCol:    "Date",
		LabelCol:   "Libellé",
		AmountMode: amountSingle,
		AmountCol:  "Montant",
	},
	{
		Name:       "simple",
		DEffectCol: "Date",
		LabelCol:   "Libellé",
		AmountMode: amountSingle,
		AmountCol:  "Montant",
	},
}
