// Package sources manages the list of pages to scrape.
//
// Sources come from the built-in default list or from the command
// line. Every URL is validated up front so a typo fails the run
// before any network traffic happens.
package sources

import (
	"fmt"
	"net/url"
	"strings"
)

// Default lists the event pages scraped when no --sources override is
// given.
var Default = []string{
	"https://dev.events/",
	"https://confs.tech/",
}

const (
	// Arbitrary limit to reject atypical URLs.
	maxURLLength = 300
	// Arbitrary limit to avoid excessive API usage in one run.
	maxSources = 100
)

// ValidateURL checks that a URL is well-formed and uses an allowed
// scheme.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: %q", raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL has no domain: %q", raw)
	}
	if strings.ContainsAny(raw, " \t\n\r'\"<>") {
		return fmt.Errorf("URL contains disallowed characters: %q", raw)
	}
	if len(raw) > maxURLLength {
		return fmt.Errorf("URL too long: %q", raw)
	}
	return nil
}

// ParseURLList splits and validates scrape sources. Each entry may
// itself hold several whitespace-separated URLs. Duplicates are
// removed, first occurrence wins, order is otherwise preserved.
func ParseURLList(entries []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)

	for _, entry := range entries {
		for _, raw := range strings.Fields(entry) {
			if err := ValidateURL(raw); err != nil {
				return nil, err
			}
			if seen[raw] {
				continue
			}
			seen[raw] = true
			out = append(out, raw)
		}
	}

	if len(out) > maxSources {
		return nil, fmt.Errorf("too many URLs to scrape: %d (limit %d)", len(out), maxSources)
	}
	return out, nil
}
