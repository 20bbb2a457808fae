package writers

import (
	"encoding/csv"
	"fmt"
	"iter"
	"os"

	"github.com/civicminder/event-scraper/internal/event"
)

// WriteCSV appends the events to a CSV file. The header row is written
// only when the file is empty, so repeated runs against the same file
// produce a single header. An empty stream leaves the filesystem
// untouched: the file is opened only once the first event arrives.
func WriteCSV(events iter.Seq[*event.Event], path string) error {
	var file *os.File
	var w *csv.Writer

	for evt := range events {
		if file == nil {
			var err error
			file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("opening output file: %w", err)
			}
			w = csv.NewWriter(file)

			info, err := file.Stat()
			if err != nil {
				file.Close()
				return fmt.Errorf("checking output file: %w", err)
			}
			if info.Size() == 0 {
				if err := w.Write(event.Columns()); err != nil {
					file.Close()
					return fmt.Errorf("writing header: %w", err)
				}
			}
		}

		if err := w.Write(evt.Flat().Record()); err != nil {
			file.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}

	if file == nil {
		// Stream was empty, nothing to save.
		return nil
	}

	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flushing output: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
