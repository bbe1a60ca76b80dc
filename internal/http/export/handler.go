package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openbook-core/openbook/internal/entry"
	"github.com/openbook-core/openbook/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/entries", h.entries)
}

// entries streams the matching entries as a CSV download.
func (h *Handler) entries(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(time.Now())))

	if _, err := h.svc.WriteCSV(r.Context(), w, filter); err != nil {
		// headers are gone already, log and bail
		slog.Error("failed to stream export", "error", err)
	}
}
