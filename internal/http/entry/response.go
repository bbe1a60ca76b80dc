package entry

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbook-core/openbook/internal/entry"
)

type entryResponse struct {
	Number      uint64          `json:"number"`
	Label       string          `json:"label"`
	Ref         string          `json:"ref,omitempty"`
	DEffect     time.Time       `json:"deffect"`
	DOpe        time.Time       `json:"dope"`
	Account     string          `json:"account"`
	Currency    string          `json:"currency"`
	Ledger      string          `json:"ledger"`
	OpeTemplate string          `json:"ope_template,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Status      entry.Status    `json:"status"`

	SettlementNumber uint64     `json:"settlement_number,omitempty"`
	SettlementStamp  *time.Time `json:"settlement_stamp,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(e *entry.Entry) entryResponse {
	return entryResponse{
		Number:      e.Number,
		Label:       e.Label,
		Ref:         e.Ref,
		DEffect:     e.DEffect,
		DOpe:        e.DOpe,
		Account:     e.Account,
		Currency:    e.Currency,
		Ledger:      e.Ledger,
		OpeTemplate: e.OpeTemplate,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Status:      e.Status,

		SettlementNumber: e.SettlementNumber,
		SettlementStamp:  e.SettlementStamp,

		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toResponseList(entries []*entry.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}
