// Package sheets exports scraped CSV files to a Google Sheet.
//
// Rows already present in the sheet are skipped, keyed on the columns
// that identify an event, so re-exporting the same file is safe.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/civicminder/event-scraper/internal/logger"
)

// DeduplicationColumns are the 0-indexed columns used to identify a
// row: the event title and its start.
var DeduplicationColumns = []int{0, 1}

// Client wraps the Sheets API for append-only exports.
type Client struct {
	svc *sheetsapi.Service
	log *logger.Logger
}

// Connect authenticates with a service-account key in JSON form.
func Connect(ctx context.Context, serviceAccountKey []byte, log *logger.Logger) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(serviceAccountKey),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to sheets: %w", err)
	}
	return &Client{svc: svc, log: log}, nil
}

// FetchRows returns every row currently on the named sheet.
func (c *Client) FetchRows(spreadsheetID, sheetName string) ([][]any, error) {
	result, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, sheetName).
		ValueRenderOption("UNFORMATTED_VALUE").
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetching rows: %w", err)
	}
	return result.Values, nil
}

// AppendRows appends rows after the sheet's existing data and returns
// how many rows the API reports as written.
func (c *Client) AppendRows(spreadsheetID, sheetName string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	result, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, sheetName+"!A1", &sheetsapi.ValueRange{
		Values: rows,
	}).
		ValueInputOption("RAW").
		IncludeValuesInResponse(false).
		Do()
	if err != nil {
		return 0, fmt.Errorf("appending rows: %w", err)
	}
	if result.Updates == nil {
		return 0, nil
	}
	return result.Updates.UpdatedRows, nil
}

// Deduplicate filters newRows down to those not already present in
// existingRows, comparing only the key columns. Duplicates within
// newRows itself are also dropped, first occurrence wins.
func Deduplicate(newRows, existingRows [][]any, columns []int, log *logger.Logger) [][]any {
	seen := make(map[string]bool, len(existingRows))
	for _, row := range existingRows {
		seen[rowKey(row, columns)] = true
	}

	var out [][]any
	for _, row := range newRows {
		key := rowKey(row, columns)
		if seen[key] {
			log.Debug("Skipping duplicate row", logger.Fields{"key": key})
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

// rowKey renders the key columns into a comparable string. Short rows
// contribute empty cells, mirroring how the sheet returns them.
func rowKey(row []any, columns []int) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		if col < len(row) {
			parts[i] = fmt.Sprintf("%v", row[col])
		}
	}
	return strings.Join(parts, "\x1f")
}

// LoadCSV reads a CSV file into sheet rows, header included.
func LoadCSV(path string) ([][]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		rows[i] = row
	}
	return rows, nil
}
