package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openbook-core/openbook/internal/http/account"
	"github.com/openbook-core/openbook/internal/http/auth"
	"github.com/openbook-core/openbook/internal/http/batimport"
	"github.com/openbook-core/openbook/internal/http/conciliation"
	"github.com/openbook-core/openbook/internal/http/dossier"
	"github.com/openbook-core/openbook/internal/http/entry"
	"github.com/openbook-core/openbook/internal/http/export"
	"github.com/openbook-core/openbook/internal/http/ledger"
	"github.com/openbook-core/openbook/internal/http/settlement"
)

// Handlers bundles every v1 handler the router mounts.
type Handlers struct {
	Dossier      *dossier.Handler
	Accounts     *account.Handler
	Ledgers      *ledger.Handler
	Entries      *entry.Handler
	Settlements  *settlement.Handler
	Conciliation *conciliation.Handler
	BatImport    *batimport.Handler
	Export       *export.Handler
}

func New(h Handlers, authSecret string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/dossier", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Dossier.Routes(r)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Accounts.Routes(r)
		})

		r.Route("/ledgers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Ledgers.Routes(r)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Entries.Routes(r)
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Settlements.Routes(r)
		})

		r.Route("/conciliations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Conciliation.Routes(r)
		})

		// multipart uploads, no content-type restriction
		r.Route("/bat", h.BatImport.Routes)

		r.Route("/export", h.Export.Routes)
	})

	return router
}
