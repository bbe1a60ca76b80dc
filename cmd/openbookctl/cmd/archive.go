package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openbook-core/openbook/internal/account"
	accountStore "github.com/openbook-core/openbook/internal/account/store"
)

var archiveDate string

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Snapshot every account's balances",
	Long: `Archive the current balance buckets of every account under the
given date, typically at exercice close. Re-archiving the same date
overwrites that date's snapshot.`,
	Run: runArchive,
}

func init() {
	archiveCmd.Flags().StringVar(&archiveDate, "date", "", "snapshot date (YYYY-MM-DD, default today)")
}

func runArchive(cmd *cobra.Command, args []string) {
	date := time.Now()

	if archiveDate != "" {
		var err error
		date, err = time.Parse(time.DateOnly, archiveDate)
		exitOnError(err, "invalid --date")
	}

	_, db, err := openDB()
	exitOnError(err, "failed to open database")
	defer db.Close()

	accounts := account.NewService(accountStore.New(db))

	n, err := accounts.ArchiveAll(cmd.Context(), date)
	exitOnError(err, "failed to archive balances")

	fmt.Printf("Archived %d account(s) at %s\n", n, date.Format(time.DateOnly))
}
