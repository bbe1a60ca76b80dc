package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openbook-core/openbook/internal/bat"
	"github.com/openbook-core/openbook/internal/bat/frcsv"
	batStore "github.com/openbook-core/openbook/internal/bat/store"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a bank statement file",
	Long: `Parse a bank statement and record it with its lines, ready for
conciliation against ledger entries.

Example:
  openbookctl import --format frcsv releve-juin.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", string(bat.FormatFrCSV), "bank file format")
}

func runImport(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	exitOnError(err, "failed to open bank file")
	defer f.Close()

	_, db, err := openDB()
	exitOnError(err, "failed to open database")
	defer db.Close()

	svc := bat.NewService(batStore.New(db), map[bat.Format]bat.Importer{
		bat.FormatFrCSV: frcsv.New(),
	})

	file, err := svc.Import(cmd.Context(), args[0], bat.Format(importFormat), f)
	exitOnError(err, "failed to import bank file")

	fmt.Printf("Imported %s: %d line(s)", file.URI, file.LineCount)
	if file.Begin != nil && file.End != nil {
		fmt.Printf(", %s to %s",
			file.Begin.Format(time.DateOnly), file.End.Format(time.DateOnly))
	}
	fmt.Printf(" (id %d)\n", file.ID)
}
