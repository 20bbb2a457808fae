// Package writers appends event streams to files.
//
// The format is inferred from the output path's extension: .csv gets a
// header on first write and one row per event, .jsonl gets one compact
// JSON object per line. Both formats append, so repeated runs
// accumulate into the same file.
package writers

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/civicminder/event-scraper/internal/event"
)

// ErrUnsupportedFormat is returned for output extensions with no
// registered writer.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Extensions lists the supported output file extensions.
func Extensions() []string {
	return []string{".csv", ".jsonl"}
}

// Write appends the events to the file at path, choosing the format
// from the extension.
func Write(events iter.Seq[*event.Event], path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(events, path)
	case ".jsonl":
		return WriteJSONL(events, path)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
