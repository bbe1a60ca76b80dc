// Package cmd provides the openbookctl CLI commands.
package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openbook-core/openbook/internal/config"
	"github.com/openbook-core/openbook/internal/database"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "openbookctl",
	Short: "Administer an openbook dossier",
	Long: `openbookctl is the operator side of openbook: it prepares the
dossier database, seeds charts of accounts, imports bank files and
runs integrity checks without going through the HTTP API.

Example:
  openbookctl migrate
  openbookctl seed charts/pcg.yaml
  openbookctl import --format frcsv releve-juin.csv
  openbookctl check`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(tokenCmd)
}

// loadConfig reads .env when present, then the environment.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	return config.Load()
}

// openDB connects to the dossier database named by the config.
func openDB() (*config.Config, *sql.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	return cfg, db, nil
}

func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
