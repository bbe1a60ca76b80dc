package conciliation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openbook-core/openbook/internal/conciliation"
)

type Handler struct {
	svc *conciliation.Service
}

func NewHandler(svc *conciliation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/by-member", h.getByMember)
	r.Delete("/member", h.removeMember)
	r.Get("/{id}", h.get)
	r.Post("/{id}/members", h.addMembers)
	r.Delete("/{id}", h.dissolve)
}

type memberDTO struct {
	Kind conciliation.MemberKind `json:"kind"`
	ID   uint64                  `json:"id"`
}

type groupRequest struct {
	Members []memberDTO `json:"members"`
}

type groupResponse struct {
	ID        uint64      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Members   []memberDTO `json:"members"`
}

func toResponse(g *conciliation.Group) groupResponse {
	resp := groupResponse{
		ID:        g.ID,
		CreatedAt: g.CreatedAt,
		Members:   make([]memberDTO, len(g.Members)),
	}

	for i, m := range g.Members {
		resp.Members[i] = memberDTO{Kind: m.Kind, ID: m.ID}
	}

	return resp
}

func toMembers(dtos []memberDTO) []conciliation.Member {
	members := make([]conciliation.Member, len(dtos))
	for i, d := range dtos {
		members[i] = conciliation.Member{Kind: d.Kind, ID: d.ID}
	}

	return members
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.svc.Create(r.Context(), toMembers(req.Members))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	g, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getByMember(w http.ResponseWriter, r *http.Request) {
	m, ok := memberFromQuery(w, r)
	if !ok {
		return
	}

	g, err := h.svc.GetByMember(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(g)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Add(r.Context(), id, toMembers(req.Members)); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type removeResponse struct {
	Dissolved bool `json:"dissolved"`
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	m, ok := memberFromQuery(w, r)
	if !ok {
		return
	}

	dissolved, err := h.svc.Remove(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(removeResponse{Dissolved: dissolved}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) dissolve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Dissolve(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func memberFromQuery(w http.ResponseWriter, r *http.Request) (conciliation.Member, bool) {
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid member id", http.StatusBadRequest)
		return conciliation.Member{}, false
	}

	return conciliation.Member{
		Kind: conciliation.MemberKind(r.URL.Query().Get("kind")),
		ID:   id,
	}, true
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *conciliation.InvalidDataError

	switch {
	case errors.Is(err, conciliation.ErrNotFound):
		http.Error(w, "conciliation group not found", http.StatusNotFound)
	case errors.Is(err, conciliation.ErrAlreadyReconciled):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
