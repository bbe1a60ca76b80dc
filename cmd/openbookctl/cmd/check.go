package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openbook-core/openbook/internal/ledger"
	ledgerStore "github.com/openbook-core/openbook/internal/ledger/store"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify account balances against the entries",
	Long: `Recompute every detail account's balance buckets from its
entries, compare them with the stored columns and verify that debits
equal credits over the live entries. Exits non-zero on any drift.`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	_, db, err := openDB()
	exitOnError(err, "failed to open database")
	defer db.Close()

	engine := ledger.NewBalanceEngine(ledgerStore.New(db))

	report, err := engine.Check(cmd.Context())
	exitOnError(err, "failed to run balance check")

	fmt.Printf("Totals: debit %s, credit %s\n",
		report.Totals.Debit, report.Totals.Credit)

	for _, d := range report.Discrepancies {
		fmt.Printf("account %s %s: stored %s, computed %s\n",
			d.Account, d.Bucket, d.Stored, d.Computed)
	}

	if !report.OK() {
		fmt.Fprintln(os.Stderr, "balance check FAILED")
		os.Exit(1)
	}

	fmt.Println("balance check OK")
}
