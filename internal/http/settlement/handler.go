package settlement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openbook-core/openbook/internal/settlement"
)

type Handler struct {
	svc *settlement.Service
}

func NewHandler(svc *settlement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{number}", h.get)
	r.Post("/{number}/entries", h.extend)
	r.Delete("/{number}", h.dissolve)
}

type settlementRequest struct {
	Entries []uint64 `json:"entries"`
}

type settlementResponse struct {
	Number  uint64    `json:"number"`
	Stamp   time.Time `json:"stamp"`
	Account string    `json:"account"`
	Entries []uint64  `json:"entries"`
}

func toResponse(st *settlement.Settlement) settlementResponse {
	return settlementResponse{
		Number:  st.Number,
		Stamp:   st.Stamp,
		Account: st.Account,
		Entries: st.Entries,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req settlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.Create(r.Context(), req.Entries)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseUint(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		http.Error(w, "invalid number", http.StatusBadRequest)
		return
	}

	st, err := h.svc.GetByNumber(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) extend(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseUint(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		http.Error(w, "invalid number", http.StatusBadRequest)
		return
	}

	var req settlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	st, err := h.svc.Extend(r.Context(), number, req.Entries)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(st)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type dissolveResponse struct {
	Freed int `json:"freed"`
}

func (h *Handler) dissolve(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseUint(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		http.Error(w, "invalid number", http.StatusBadRequest)
		return
	}

	n, err := h.svc.Dissolve(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(dissolveResponse{Freed: n}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *settlement.InvalidDataError

	switch {
	case errors.Is(err, settlement.ErrNotFound):
		http.Error(w, "settlement not found", http.StatusNotFound)
	case errors.Is(err, settlement.ErrAlreadySettled):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
