package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbook-core/openbook/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the dossier schema",
	Long: `Apply the schema to the dossier database and seed the dossier
row. Safe to run repeatedly; existing data is left untouched.`,
	Run: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) {
	_, db, err := openDB()
	exitOnError(err, "failed to open database")
	defer db.Close()

	exitOnError(database.Migrate(cmd.Context(), db), "failed to migrate database")

	fmt.Println("Schema up to date")
}
