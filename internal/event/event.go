package event

import (
	"fmt"
	"strings"
	"time"
)

// Approved tracks the manual review state of a scraped event.
// Events start out pending and are approved or rejected downstream.
type Approved string

const (
	ApprovedPending Approved = "pending"
	ApprovedYes     Approved = "yes"
	ApprovedNo      Approved = "no"
)

func (a Approved) String() string {
	return string(a)
}

// ValidationError reports an event that violates a structural rule.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid event: field %q: %s", e.Field, e.Rule)
}

// Event is the canonical record produced by scraping.
//
// Pointer fields distinguish "unknown" (nil) from a known value, which
// is what Merge keys off. Start and end carry partial timestamps; see
// DateAndTime.
type Event struct {
	Title       *string
	Start       *DateAndTime
	End         *DateAndTime
	Description *string
	URL         *string
	Virtual     *bool

	LocationCountry *string
	LocationRegion  *string
	LocationCity    *string

	// Review fields, never populated by parsing.
	AccessibleToCanadians *float64
	OpenToPublic          *float64
	Approved              Approved

	ScrapeSource   string
	ScrapeDatetime time.Time
}

// Params carries the parse-time fields of an Event into New.
type Params struct {
	Title           *string
	Start           *DateAndTime
	End             *DateAndTime
	Description     *string
	URL             *string
	Virtual         *bool
	LocationCountry *string
	LocationRegion  *string
	LocationCity    *string
	ScrapeSource    string
	ScrapeDatetime  time.Time
}

// New validates and constructs an Event.
//
// Textual values holding the literal string "null" are normalized to
// unknown before any other check runs; the extraction API sometimes
// emits the string instead of a real JSON null. A start or end whose
// time is known but whose date is not fails validation: such a record
// cannot be ordered or filtered and signals a bad parse.
func New(p Params) (*Event, error) {
	if err := checkTimeHasDate("start", p.Start); err != nil {
		return nil, err
	}
	if err := checkTimeHasDate("end", p.End); err != nil {
		return nil, err
	}

	return &Event{
		Title:           normalizeNull(p.Title),
		Start:           p.Start,
		End:             p.End,
		Description:     normalizeNull(p.Description),
		URL:             normalizeNull(p.URL),
		Virtual:         p.Virtual,
		LocationCountry: normalizeNull(p.LocationCountry),
		LocationRegion:  normalizeNull(p.LocationRegion),
		LocationCity:    normalizeNull(p.LocationCity),
		Approved:        ApprovedPending,
		ScrapeSource:    p.ScrapeSource,
		ScrapeDatetime:  p.ScrapeDatetime,
	}, nil
}

func checkTimeHasDate(field string, dt *DateAndTime) error {
	if dt.HasTime() && !dt.HasDate() {
		return &ValidationError{Field: field, Rule: "time specified without a date"}
	}
	return nil
}

// normalizeNull converts the literal string "null" to an unknown value.
func normalizeNull(s *string) *string {
	if s != nil && strings.EqualFold(*s, "null") {
		return nil
	}
	return s
}

// Merge fills the unknown fields of e from other, in place, and
// returns e. Known fields of e are never overwritten. Start and end
// merge component-wise rather than wholesale, so a date-only start can
// pick up the other record's time of day.
func (e *Event) Merge(other *Event) *Event {
	if other == nil {
		return e
	}
	if e.Title == nil {
		e.Title = other.Title
	}
	if e.Start == nil {
		e.Start = other.Start
	} else {
		e.Start.Merge(other.Start)
	}
	if e.End == nil {
		e.End = other.End
	} else {
		e.End.Merge(other.End)
	}
	if e.Description == nil {
		e.Description = other.Description
	}
	if e.URL == nil {
		e.URL = other.URL
	}
	if e.Virtual == nil {
		e.Virtual = other.Virtual
	}
	if e.LocationCountry == nil {
		e.LocationCountry = other.LocationCountry
	}
	if e.LocationRegion == nil {
		e.LocationRegion = other.LocationRegion
	}
	if e.LocationCity == nil {
		e.LocationCity = other.LocationCity
	}
	if e.AccessibleToCanadians == nil {
		e.AccessibleToCanadians = other.AccessibleToCanadians
	}
	if e.OpenToPublic == nil {
		e.OpenToPublic = other.OpenToPublic
	}
	if e.Approved == "" {
		e.Approved = other.Approved
	}
	if e.ScrapeSource == "" {
		e.ScrapeSource = other.ScrapeSource
	}
	if e.ScrapeDatetime.IsZero() {
		e.ScrapeDatetime = other.ScrapeDatetime
	}
	return e
}

// List is the top-level response shape for extraction engines with
// structured output: a single "events" key holding the records.
type List struct {
	Events []*Event `json:"events"`
}
