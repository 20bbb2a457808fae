// Command sheets-export appends a scraped CSV file to a Google Sheet,
// skipping rows the sheet already has.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicminder/event-scraper/internal/config"
	"github.com/civicminder/event-scraper/internal/logger"
	"github.com/civicminder/event-scraper/internal/sheets"
)

var (
	flagNoDotEnv bool
	flagVerbose  bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets-export CSV_FILE",
		Short: "Export a scraped CSV file to Google Sheets",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	cmd.Flags().BoolVar(&flagNoDotEnv, "no-dot-env", false,
		"Do not load configuration from a .env file; assume environment variables are already set")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	csvPath := args[0]

	cfg, err := config.Load(flagNoDotEnv)
	if err != nil {
		return err
	}
	if cfg.GoogleServiceAccountKey == "" || cfg.GoogleSpreadsheetID == "" || cfg.GoogleSheetName == "" {
		return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_KEY, GOOGLE_SPREADSHEET_ID and GOOGLE_SHEET_NAME must be set; see .env.example")
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)

	ctx := context.Background()
	client, err := sheets.Connect(ctx, []byte(cfg.GoogleServiceAccountKey), log)
	if err != nil {
		return err
	}

	existingRows, err := client.FetchRows(cfg.GoogleSpreadsheetID, cfg.GoogleSheetName)
	if err != nil {
		return err
	}
	log.Info("Fetched rows", logger.Fields{"count": len(existingRows)})

	inputRows, err := sheets.LoadCSV(csvPath)
	if err != nil {
		return err
	}

	rows := sheets.Deduplicate(inputRows, existingRows, sheets.DeduplicationColumns, log)
	appended, err := client.AppendRows(cfg.GoogleSpreadsheetID, cfg.GoogleSheetName, rows)
	if err != nil {
		return err
	}
	log.Info("Appended rows", logger.Fields{"count": appended})
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
