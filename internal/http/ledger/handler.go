package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/openbook-core/openbook/internal/entry"
	"github.com/openbook-core/openbook/internal/ledger"
)

type Handler struct {
	svc     *ledger.Service
	engine  *ledger.BalanceEngine
	entries *entry.Service
}

func NewHandler(svc *ledger.Service, engine *ledger.BalanceEngine, entries *entry.Service) *Handler {
	return &Handler{svc: svc, engine: engine, entries: entries}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/check", h.check)
	r.Get("/{mnemo}", h.get)
	r.Patch("/{mnemo}", h.update)
	r.Post("/{mnemo}/close", h.close)
}

type ledgerRequest struct {
	Mnemo string `json:"mnemo"`
	Label string `json:"label"`
	Notes string `json:"notes"`
}

type ledgerResponse struct {
	Mnemo     string     `json:"mnemo"`
	Label     string     `json:"label"`
	Notes     string     `json:"notes,omitempty"`
	LastClose *time.Time `json:"last_close,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toResponse(l *ledger.Ledger) ledgerResponse {
	return ledgerResponse{
		Mnemo:     l.Mnemo,
		Label:     l.Label,
		Notes:     l.Notes,
		LastClose: l.LastClose,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ledgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l := &ledger.Ledger{Mnemo: req.Mnemo, Label: req.Label, Notes: req.Notes}

	if err := h.svc.Insert(r.Context(), l); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ledgers, err := h.svc.GetDataset(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]ledgerResponse, len(ledgers))
	for i, l := range ledgers {
		resp[i] = toResponse(l)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetByMnemo(r.Context(), chi.URLParam(r, "mnemo"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	mnemo := chi.URLParam(r, "mnemo")

	l, err := h.svc.GetByMnemo(r.Context(), mnemo)
	if err != nil {
		writeError(w, err)
		return
	}

	var req ledgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l.Label = req.Label
	l.Notes = req.Notes

	if err := h.svc.Update(r.Context(), l); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type closeRequest struct {
	Date time.Time `json:"date"`
}

type closeResponse struct {
	Validated int `json:"validated"`
}

// close validates every rough entry of the ledger up to the date, then
// records the close date.
func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	mnemo := chi.URLParam(r, "mnemo")

	var req closeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.entries.ValidateLedger(r.Context(), mnemo, req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.svc.Close(r.Context(), mnemo, req.Date); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(closeResponse{Validated: n}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type discrepancyResponse struct {
	Account  string          `json:"account"`
	Bucket   string          `json:"bucket"`
	Stored   decimal.Decimal `json:"stored"`
	Computed decimal.Decimal `json:"computed"`
}

type checkResponse struct {
	OK            bool                  `json:"ok"`
	Balanced      bool                  `json:"balanced"`
	TotalDebit    decimal.Decimal       `json:"total_debit"`
	TotalCredit   decimal.Decimal       `json:"total_credit"`
	Discrepancies []discrepancyResponse `json:"discrepancies,omitempty"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	report, err := h.engine.Check(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := checkResponse{
		OK:          report.OK(),
		Balanced:    report.Balanced,
		TotalDebit:  report.Totals.Debit,
		TotalCredit: report.Totals.Credit,
	}

	for _, d := range report.Discrepancies {
		resp.Discrepancies = append(resp.Discrepancies, discrepancyResponse{
			Account:  d.Account,
			Bucket:   d.Bucket,
			Stored:   d.Stored,
			Computed: d.Computed,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *ledger.InvalidDataError

	switch {
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "ledger not found", http.StatusNotFound)
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
