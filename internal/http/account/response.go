package account

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbook-core/openbook/internal/account"
)

type accountResponse struct {
	Number        string `json:"number"`
	Label         string `json:"label"`
	Currency      string `json:"currency,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Class         int    `json:"class"`
	Root          bool   `json:"root"`
	Settleable    bool   `json:"settleable"`
	Reconciliable bool   `json:"reconciliable"`
	Forwardable   bool   `json:"forwardable"`
	Closed        bool   `json:"closed"`

	ValidatedDebit  decimal.Decimal `json:"validated_debit"`
	ValidatedCredit decimal.Decimal `json:"validated_credit"`
	RoughDebit      decimal.Decimal `json:"rough_debit"`
	RoughCredit     decimal.Decimal `json:"rough_credit"`
	FutureDebit     decimal.Decimal `json:"future_debit"`
	FutureCredit    decimal.Decimal `json:"future_credit"`
	Solde           decimal.Decimal `json:"solde"`
	DEffect         *time.Time      `json:"deffect,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type archiveResponse struct {
	Date   time.Time       `json:"date"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		Number:        a.Number,
		Label:         a.Label,
		Currency:      a.Currency,
		Notes:         a.Notes,
		Class:         a.Class(),
		Root:          a.Root,
		Settleable:    a.Settleable,
		Reconciliable: a.Reconciliable,
		Forwardable:   a.Forwardable,
		Closed:        a.Closed,

		ValidatedDebit:  a.ValidatedDebit,
		ValidatedCredit: a.ValidatedCredit,
		RoughDebit:      a.RoughDebit,
		RoughCredit:     a.RoughCredit,
		FutureDebit:     a.FutureDebit,
		FutureCredit:    a.FutureCredit,
		Solde:           a.GlobalSolde(),
		DEffect:         a.DEffect,

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toResponseList(accounts []*account.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	return resp
}

func toArchiveList(archives []account.ArchivedBalance) []archiveResponse {
	resp := make([]archiveResponse, len(archives))
	for i, ab := range archives {
		resp[i] = archiveResponse{Date: ab.Date, Debit: ab.Debit, Credit: ab.Credit}
	}

	return resp
}
