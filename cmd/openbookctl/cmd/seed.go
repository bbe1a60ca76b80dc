package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openbook-core/openbook/internal/account"
	accountStore "github.com/openbook-core/openbook/internal/account/store"
	"github.com/openbook-core/openbook/internal/chart"
)

var seedCmd = &cobra.Command{
	Use:   "seed <chart.yaml>",
	Short: "Seed accounts from a chart file",
	Long: `Load a YAML chart of accounts and insert every account the
dossier does not have yet. Existing accounts are never modified, so
re-seeding an updated chart only fills the gaps.

Example:
  openbookctl seed charts/pcg.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	exitOnError(err, "failed to open chart file")
	defer f.Close()

	c, err := chart.Parse(f)
	exitOnError(err, "failed to parse chart")

	_, db, err := openDB()
	exitOnError(err, "failed to open database")
	defer db.Close()

	accounts := account.NewService(accountStore.New(db))
	seeder := chart.NewSeeder(accounts, slog.Default())

	created, err := seeder.Apply(cmd.Context(), c)
	exitOnError(err, "failed to apply chart")

	fmt.Printf("Chart %q applied: %d account(s) created\n", c.Name, created)
}
