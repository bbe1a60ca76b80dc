package entry

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/openbook-core/openbook/internal/entry"
)

type Handler struct {
	svc *entry.Service
}

func NewHandler(svc *entry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/max-deffect", h.maxDeffect)
	r.Get("/{number}", h.get)
	r.Patch("/{number}", h.update)
	r.Delete("/{number}", h.delete)
	r.Post("/{number}/validate", h.validate)
}

type entryRequest struct {
	Label       string          `json:"label"`
	Ref         string          `json:"ref"`
	DEffect     time.Time       `json:"deffect"`
	DOpe        time.Time       `json:"dope"`
	Account     string          `json:"account"`
	Currency    string          `json:"currency"`
	Ledger      string          `json:"ledger"`
	OpeTemplate string          `json:"ope_template"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`

	AllowClosedAccount bool `json:"allow_closed_account,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e := &entry.Entry{
		Label:       req.Label,
		Ref:         req.Ref,
		DEffect:     req.DEffect,
		DOpe:        req.DOpe,
		Account:     req.Account,
		Currency:    req.Currency,
		Ledger:      req.Ledger,
		OpeTemplate: req.OpeTemplate,
		Debit:       req.Debit,
		Credit:      req.Credit,
	}

	opts := entry.InsertOptions{AllowClosedAccount: req.AllowClosedAccount}

	if err := h.svc.Insert(r.Context(), e, opts); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := entry.ListFilter{
		Account: r.URL.Query().Get("account"),
		Ledger:  r.URL.Query().Get("ledger"),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := entry.Status(s)
		if !status.Valid() {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}

		filter.Status = &status
	}

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.From = &t
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.To = &t
		}
	}

	entries, err := h.svc.GetDataset(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	number, err := parseNumber(r)
	if err != nil {
		http.Error(w, "invalid number", http.StatusBadRequest)
		return
	}

	e, err := h.svc.GetByNumber(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	number, err := parseNumber(r)
	if err != nil {
		http.Error(w, "invalid number", http.StatusBadRequest)
		return
	}

	e, err := h.svc.GetByNumber(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e.Label = req.Label
	e.Ref = req.Ref
	e.DEffect = req.DEffect
	e.DOpe = req.DOpe
	e.Account = req.Account
	e.Currency = req.Currency
	e.Ledger = req.Ledger
	e.OpeTemplate = req.OpeTemplate
	e.Debit = req.Debit
	e.Credit = req.Credit

	opts := entry.InsertOptions{AllowClosedAccount: req.AllowClosedAccount}

	if err := h.svc.Update(r.Context(), e, opts); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	number, err := parseNumber(r)
	if err != nil {
		http.Error(w, "invalid number", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Delete(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	number, err := parseNumber(r)
	if err != nil {
		http.Error(w, "invalid number", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Validate(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type maxDeffectResponse struct {
	MaxDeffect *time.Time `json:"max_deffect"`
}

func (h *Handler) maxDeffect(w http.ResponseWriter, r *http.Request) {
	scope := entry.MaxDeffectScope{
		Account: r.URL.Query().Get("account"),
		Ledger:  r.URL.Query().Get("ledger"),
	}

	max, err := h.svc.MaxDeffect(r.Context(), scope)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(maxDeffectResponse{MaxDeffect: max}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parseNumber(r *http.Request) (uint64, error) {
	return strconv.ParseUint(chi.URLParam(r, "number"), 10, 64)
}

func writeError(w http.ResponseWriter, err error) {
	var (
		invalid *entry.InvalidDataError
		state   *entry.InvalidStateTransitionError
	)

	switch {
	case errors.Is(err, entry.ErrNotFound):
		http.Error(w, "entry not found", http.StatusNotFound)
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &state):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
