package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openbook-core/openbook/internal/account"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/archive", h.archiveAll)
	r.Get("/{number}", h.get)
	r.Patch("/{number}", h.update)
	r.Delete("/{number}", h.delete)
	r.Get("/{number}/children", h.children)
	r.Post("/{number}/archive", h.archive)
	r.Get("/{number}/archives", h.archives)
}

type accountRequest struct {
	Number        string `json:"number"`
	Label         string `json:"label"`
	Currency      string `json:"currency"`
	Notes         string `json:"notes"`
	Root          bool   `json:"root"`
	Settleable    bool   `json:"settleable"`
	Reconciliable bool   `json:"reconciliable"`
	Forwardable   bool   `json:"forwardable"`
	Closed        bool   `json:"closed"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a := &account.Account{
		Number:        req.Number,
		Label:         req.Label,
		Currency:      req.Currency,
		Notes:         req.Notes,
		Root:          req.Root,
		Settleable:    req.Settleable,
		Reconciliable: req.Reconciliable,
		Forwardable:   req.Forwardable,
		Closed:        req.Closed,
	}

	if err := h.svc.Insert(r.Context(), a); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := account.ListFilter{
		Prefix: r.URL.Query().Get("prefix"),
	}

	if s := r.URL.Query().Get("class"); s != "" {
		if class, err := strconv.Atoi(s); err == nil {
			filter.Class = &class
		}
	}

	accounts, err := h.svc.GetDataset(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(accounts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	a, err := h.svc.GetByNumber(r.Context(), number)
	if err != nil {
		writeError(w, err)
		return
	}

	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.Label = req.Label
	a.Currency = req.Currency
	a.Notes = req.Notes
	a.Settleable = req.Settleable
	a.Reconciliable = req.Reconciliable
	a.Forwardable = req.Forwardable
	a.Closed = req.Closed

	if err := h.svc.Update(r.Context(), a); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "number")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) children(w http.ResponseWriter, r *http.Request) {
	children, err := h.svc.GetChildren(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(children)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type archiveRequest struct {
	Date time.Time `json:"date"`
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.ArchiveBalances(r.Context(), chi.URLParam(r, "number"), req.Date); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) archiveAll(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n, err := h.svc.ArchiveAll(r.Context(), req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]int{"archived": n}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) archives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.svc.GetArchives(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toArchiveList(archives)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *account.InvalidDataError

	switch {
	case errors.Is(err, account.ErrNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, account.ErrNotDeletable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
