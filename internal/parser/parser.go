package parser

import (
	"iter"
	"net/url"
	"strings"
	"time"

	"github.com/civicminder/event-scraper/internal/event"
	"github.com/civicminder/event-scraper/internal/fields"
)

// IsVirtual classifies a free-text attendance description.
// Returns nil when the description is empty or unrecognized.
func IsVirtual(attendence string) *bool {
	attendence = strings.ToLower(strings.TrimSpace(attendence))
	switch attendence {
	case "in-person", "in person":
		return boolPtr(false)
	case "virtual", "online", "on-line", "hybrid":
		return boolPtr(true)
	}
	return nil
}

// ResolveURL resolves a possibly-relative URL against the page it was
// scraped from. Some pages link events as bare paths like
// "/path/to/event.html"; combining with the source yields the full
// URL. Absolute URLs pass through unchanged, as does anything that
// fails to parse.
func ResolveURL(source, ref string) string {
	base, err := url.Parse(source)
	if err != nil {
		return ref
	}
	relative, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(relative).String()
}

// Item converts one raw response item into an Event.
//
// Every field goes through a type-checked fetch, so a single malformed
// field degrades to unknown without taking down the item. The returned
// error is a validation failure on the assembled event; callers should
// drop the item and move on.
func Item(response map[string]any, scrapeSource string, scrapeDatetime time.Time) (*event.Event, error) {
	title := optString(fields.Fetch[string](response, "event_name"))

	startDate, _ := fields.Fetch[string](response, "start_date")
	startTime, _ := fields.Fetch[string](response, "start_time")
	start := ParseDateAndTime(startDate, startTime)

	endDate, _ := fields.Fetch[string](response, "end_date")
	endTime, _ := fields.Fetch[string](response, "end_time")
	end := ParseDateAndTime(endDate, endTime)

	description := optString(fields.Fetch[string](response, "event_description"))

	attendence, _ := fields.Fetch[string](response, "event_attendence")
	virtual := IsVirtual(attendence)

	country := optString(fields.Fetch[string](response, "event_country"))
	region := optString(fields.Fetch[string](response, "event_region"))
	city := optString(fields.Fetch[string](response, "event_city"))

	var eventURL *string
	if raw, ok := fields.Fetch[string](response, "event_url"); ok && raw != "" {
		resolved := ResolveURL(scrapeSource, raw)
		eventURL = &resolved
	}

	return event.New(event.Params{
		Title:           title,
		Start:           start,
		End:             end,
		Description:     description,
		URL:             eventURL,
		Virtual:         virtual,
		LocationCountry: country,
		LocationRegion:  region,
		LocationCity:    city,
		ScrapeSource:    scrapeSource,
		ScrapeDatetime:  scrapeDatetime,
	})
}

// Response yields one Event per item under the response's "events"
// key, in encounter order. Malformed items are skipped. The sequence
// is lazy and single-pass.
func Response(response map[string]any, scrapeSource string, scrapeDatetime time.Time) iter.Seq[*event.Event] {
	return func(yield func(*event.Event) bool) {
		items, ok := fields.Fetch[[]any](response, "events")
		if !ok {
			return
		}
		for _, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			evt, err := Item(item, scrapeSource, scrapeDatetime)
			if err != nil {
				continue
			}
			if !yield(evt) {
				return
			}
		}
	}
}

// optString converts a fetched field to an optional value. The
// extraction prompts use the empty string for fields a page does not
// provide, so an empty string counts as unknown.
func optString(value string, ok bool) *string {
	if !ok || value == "" {
		return nil
	}
	return &value
}

func boolPtr(b bool) *bool {
	return &b
}
