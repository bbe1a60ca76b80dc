package batimport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbook-core/openbook/internal/bat"
)

// maxUploadSize bounds the multipart form, bank files are small.
const maxUploadSize = 10 << 20

type Handler struct {
	svc *bat.Service
}

func NewHandler(svc *bat.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importFile)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/lines", h.lines)
	r.Delete("/{id}", h.delete)
}

type fileResponse struct {
	ID        uint64     `json:"id"`
	ImportID  uuid.UUID  `json:"import_id"`
	URI       string     `json:"uri"`
	Format    bat.Format `json:"format"`
	Currency  string     `json:"currency,omitempty"`
	Begin     *time.Time `json:"begin,omitempty"`
	End       *time.Time `json:"end,omitempty"`
	LineCount int        `json:"line_count"`
	CreatedAt time.Time  `json:"created_at"`
}

type lineResponse struct {
	ID       uint64          `json:"id"`
	BatID    uint64          `json:"bat_id"`
	DOpe     *time.Time      `json:"dope,omitempty"`
	DEffect  time.Time       `json:"deffect"`
	Ref      string          `json:"ref,omitempty"`
	Label    string          `json:"label"`
	Currency string          `json:"currency,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

func toFileResponse(f *bat.File) fileResponse {
	return fileResponse{
		ID:        f.ID,
		ImportID:  f.ImportID,
		URI:       f.URI,
		Format:    f.Format,
		Currency:  f.Currency,
		Begin:     f.Begin,
		End:       f.End,
		LineCount: f.LineCount,
		CreatedAt: f.CreatedAt,
	}
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := bat.Format(r.FormValue("format"))
	if format == "" {
		http.Error(w, "format field is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := h.svc.Import(r.Context(), header.Filename, format, file)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toFileResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	files, err := h.svc.GetDataset(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]fileResponse, len(files))
	for i, f := range files {
		resp[i] = toFileResponse(f)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	f, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toFileResponse(f)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) lines(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	lines, err := h.svc.GetLines(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]lineResponse, len(lines))
	for i, l := range lines {
		resp[i] = lineResponse{
			ID:       l.ID,
			BatID:    l.BatID,
			DOpe:     l.DOpe,
			DEffect:  l.DEffect,
			Ref:      l.Ref,
			Label:    l.Label,
			Currency: l.Currency,
			Amount:   l.Amount,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *bat.InvalidDataError

	switch {
	case errors.Is(err, bat.ErrNotFound):
		http.Error(w, "bat file not found", http.StatusNotFound)
	case errors.Is(err, bat.ErrNotDeletable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
}
