package dossier

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openbook-core/openbook/internal/dossier"
)

type Handler struct {
	svc *dossier.Service
}

func NewHandler(svc *dossier.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.update)
}

type dossierRequest struct {
	Label         string    `json:"label"`
	Currency      string    `json:"currency"`
	ExerciceBegin time.Time `json:"exercice_begin"`
	ExerciceEnd   time.Time `json:"exercice_end"`
}

type dossierResponse struct {
	Label         string     `json:"label"`
	Currency      string     `json:"currency"`
	ExerciceBegin time.Time `json:"exercice_begin"`
	ExerciceEnd   time.Time `json:"exercice_end"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toResponse(d *dossier.Dossier) dossierResponse {
	return dossierResponse{
		Label:         d.Label,
		Currency:      d.Currency,
		ExerciceBegin: d.ExerciceBegin,
		ExerciceEnd:   d.ExerciceEnd,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req dossierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d := &dossier.Dossier{
		Label:         req.Label,
		Currency:      req.Currency,
		ExerciceBegin: req.ExerciceBegin,
		ExerciceEnd:   req.ExerciceEnd,
	}

	if err := h.svc.Update(r.Context(), d); err != nil {
		if errors.Is(err, dossier.ErrBadExercice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
