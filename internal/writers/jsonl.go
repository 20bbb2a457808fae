package writers

import (
	"encoding/json"
	"fmt"
	"iter"
	"os"

	"github.com/civicminder/event-scraper/internal/event"
)

// WriteJSONL appends the events to a JSON Lines file: one compact
// object per line, unknown fields as null, timestamps as ISO-8601
// strings truncated to seconds.
func WriteJSONL(events iter.Seq[*event.Event], path string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}

	for evt := range events {
		line, err := json.Marshal(evt.Flat())
		if err != nil {
			file.Close()
			return fmt.Errorf("encoding record: %w", err)
		}
		line = append(line, '\n')
		if _, err := file.Write(line); err != nil {
			file.Close()
			return fmt.Errorf("writing record: %w", err)
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
