package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"warehouse.GO/config"
	importerService "warehouse.GO/service/importer"
)

var (
	importFile   string
	importDryRun bool
	importUserID uint
)

var importCmd = &cobra.Command{
	Use:   "movements:import",
	Short: "Import ledger movements from CSV",
	Long: "Import ledger movements from CSV.\n" +
		"Columns: sku_num, loc_id, movement_type (" + importerService.ValidTypes() + "), quantity_change, reference, user_id.",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := importerService.ImportMovements(db, f, importerService.ImportOptions{
			DryRun:        importDryRun,
			DefaultUserID: importUserID,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Import Report ===
CSV rows:       %d
Appended:       %d
Skipped:        %d
Mode:           %s
Total time:     %s
  - Processing: %s
  - DB append:  %s
=====================
`, res.TotalRows, res.Appended, res.Skipped,
			map[bool]string{true: "Dry run", false: "Write"}[importDryRun],
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond))
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate rows without writing")
	importCmd.Flags().UintVar(&importUserID, "user", 0, "Default user_id for rows without one")
	rootCmd.AddCommand(importCmd)
}
