package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/openbook-core/openbook/internal/account"
	accountStore "github.com/openbook-core/openbook/internal/account/store"
	"github.com/openbook-core/openbook/internal/bat"
	"github.com/openbook-core/openbook/internal/bat/frcsv"
	batStore "github.com/openbook-core/openbook/internal/bat/store"
	"github.com/openbook-core/openbook/internal/conciliation"
	concilStore "github.com/openbook-core/openbook/internal/conciliation/store"
	"github.com/openbook-core/openbook/internal/config"
	"github.com/openbook-core/openbook/internal/database"
	"github.com/openbook-core/openbook/internal/dossier"
	dossierStore "github.com/openbook-core/openbook/internal/dossier/store"
	"github.com/openbook-core/openbook/internal/entry"
	entryStore "github.com/openbook-core/openbook/internal/entry/store"
	"github.com/openbook-core/openbook/internal/export"
	openbookHttp "github.com/openbook-core/openbook/internal/http"
	accountHandler "github.com/openbook-core/openbook/internal/http/account"
	batHandler "github.com/openbook-core/openbook/internal/http/batimport"
	concilHandler "github.com/openbook-core/openbook/internal/http/conciliation"
	dossierHandler "github.com/openbook-core/openbook/internal/http/dossier"
	entryHandler "github.com/openbook-core/openbook/internal/http/entry"
	exportHandler "github.com/openbook-core/openbook/internal/http/export"
	ledgerHandler "github.com/openbook-core/openbook/internal/http/ledger"
	settlementHandler "github.com/openbook-core/openbook/internal/http/settlement"
	"github.com/openbook-core/openbook/internal/ledger"
	ledgerStore "github.com/openbook-core/openbook/internal/ledger/store"
	"github.com/openbook-core/openbook/internal/settlement"
	settlementStore "github.com/openbook-core/openbook/internal/settlement/store"
)

func main() {
	// .env is optional, real deployments use the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		dossierService    = dossier.NewService(dossierStore.New(db))
		accountService    = account.NewService(accountStore.New(db))
		ledgerService     = ledger.NewService(ledgerStore.New(db))
		balanceEngine     = ledger.NewBalanceEngine(ledgerStore.New(db))
		entryService      = entry.NewService(entryStore.New(db), accountService, dossierService, ledgerService)
		settlementService = settlement.NewService(settlementStore.New(db))
		concilService     = conciliation.NewService(concilStore.New(db))
		exportService     = export.NewService(entryService)
		batService        = bat.NewService(batStore.New(db), map[bat.Format]bat.Importer{
			bat.FormatFrCSV: frcsv.New(),
		})
	)

	router := openbookHttp.New(openbookHttp.Handlers{
		Dossier:      dossierHandler.NewHandler(dossierService),
		Accounts:     accountHandler.NewHandler(accountService),
		Ledgers:      ledgerHandler.NewHandler(ledgerService, balanceEngine, entryService),
		Entries:      entryHandler.NewHandler(entryService),
		Settlements:  settlementHandler.NewHandler(settlementService),
		Conciliation: concilHandler.NewHandler(concilService),
		BatImport:    batHandler.NewHandler(batService),
		Export:       exportHandler.NewHandler(exportService),
	}, cfg.Auth.Secret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
