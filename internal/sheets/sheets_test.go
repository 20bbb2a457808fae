package sheets

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/civicminder/event-scraper/internal/logger"
)

func quietLogger() *logger.Logger {
	return logger.New(logger.LevelError, io.Discard)
}

func TestDeduplicate(t *testing.T) {
	existing := [][]any{
		{"title", "start", "end"},
		{"Conf A", "2030-01-23", "2030-01-24"},
	}
	incoming := [][]any{
		{"title", "start", "end"},
		{"Conf A", "2030-01-23", "2030-01-25"},
		{"Conf B", "2030-02-01", ""},
	}

	got := Deduplicate(incoming, existing, DeduplicationColumns, quietLogger())

	expected := [][]any{
		{"Conf B", "2030-02-01", ""},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Deduplicate = %v, expected %v", got, expected)
	}
}

func TestDeduplicateWithinNewRows(t *testing.T) {
	incoming := [][]any{
		{"Conf A", "2030-01-23"},
		{"Conf A", "2030-01-23"},
		{"Conf A", "2030-02-01"},
	}

	got := Deduplicate(incoming, nil, DeduplicationColumns, quietLogger())
	if len(got) != 2 {
		t.Errorf("expected duplicates within the input to be dropped, got %v", got)
	}
}

func TestDeduplicateKeyColumnsOnly(t *testing.T) {
	existing := [][]any{{"Conf A", "2030-01-23", "old description"}}
	incoming := [][]any{{"Conf A", "2030-01-23", "new description"}}

	got := Deduplicate(incoming, existing, DeduplicationColumns, quietLogger())
	if len(got) != 0 {
		t.Errorf("rows matching on the key columns are duplicates, got %v", got)
	}
}

func TestDeduplicateShortRows(t *testing.T) {
	existing := [][]any{{"Conf A"}}
	incoming := [][]any{
		{"Conf A"},
		{"Conf A", "2030-01-23"},
	}

	got := Deduplicate(incoming, existing, DeduplicationColumns, quietLogger())
	if len(got) != 1 || got[0][1] != "2030-01-23" {
		t.Errorf("short rows must compare on empty cells, got %v", got)
	}
}

func TestDeduplicateMixedCellTypes(t *testing.T) {
	// Unformatted sheet values come back typed; a date the sheet holds
	// as a string still matches the CSV's string form.
	existing := [][]any{{"Conf A", float64(2030)}}
	incoming := [][]any{{"Conf A", "2030"}}

	got := Deduplicate(incoming, existing, DeduplicationColumns, quietLogger())
	if len(got) != 0 {
		t.Errorf("cells rendering to the same text are duplicates, got %v", got)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	contents := "title,start\nConf A,2030-01-23\n\"Conf, B\",2030-02-01\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	rows, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	expected := [][]any{
		{"title", "start"},
		{"Conf A", "2030-01-23"},
		{"Conf, B", "2030-02-01"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("LoadCSV = %v, expected %v", rows, expected)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
