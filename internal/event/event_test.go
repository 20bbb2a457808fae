package event

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func sp(s string) *string {
	return &s
}

func bp(b bool) *bool {
	return &b
}

func exampleParams() Params {
	start := &DateAndTime{
		Year: ip(2000), Month: ip(1), Day: ip(23),
		Hour: ip(10), Minute: ip(0), Second: ip(0),
		UTCOffsetHour: ip(0), UTCOffsetMinute: ip(0),
	}
	end := &DateAndTime{
		Year: ip(2000), Month: ip(1), Day: ip(23),
		Hour: ip(12), Minute: ip(0), Second: ip(0),
		UTCOffsetHour: ip(0), UTCOffsetMinute: ip(0),
	}
	return Params{
		Title:           sp("Sample Event"),
		Start:           start,
		End:             end,
		Description:     sp("A sample event for testing."),
		URL:             sp("http://example.com"),
		Virtual:         bp(true),
		LocationCountry: sp("Country"),
		LocationRegion:  sp("Region"),
		LocationCity:    sp("City"),
		ScrapeSource:    "https://source.example.com",
		ScrapeDatetime:  time.Date(2010, 3, 21, 1, 23, 45, 0, time.UTC),
	}
}

func TestNew(t *testing.T) {
	evt, err := New(exampleParams())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if *evt.Title != "Sample Event" {
		t.Errorf("expected title 'Sample Event', got %q", *evt.Title)
	}
	if evt.AccessibleToCanadians != nil {
		t.Error("expected accessible_to_canadians to be unknown")
	}
	if evt.OpenToPublic != nil {
		t.Error("expected open_to_public to be unknown")
	}
	if evt.Approved != ApprovedPending {
		t.Errorf("expected approval to default to pending, got %q", evt.Approved)
	}
	if evt.ScrapeSource != "https://source.example.com" {
		t.Errorf("unexpected scrape source %q", evt.ScrapeSource)
	}
}

func TestNewNormalizesNullStrings(t *testing.T) {
	p := exampleParams()
	p.Title = sp("null")
	p.Description = sp("NULL")
	p.URL = sp("Null")
	p.LocationCountry = sp("null")
	p.LocationRegion = sp("null")
	p.LocationCity = sp("null")

	evt, err := New(p)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if evt.Title != nil {
		t.Errorf("expected 'null' title to normalize to unknown, got %q", *evt.Title)
	}
	if evt.Description != nil || evt.URL != nil {
		t.Error("expected 'null' description and url to normalize to unknown")
	}
	if evt.LocationCountry != nil || evt.LocationRegion != nil || evt.LocationCity != nil {
		t.Error("expected 'null' locations to normalize to unknown")
	}
}

func TestNewKeepsNullSubstrings(t *testing.T) {
	p := exampleParams()
	p.Title = sp("nullified")

	evt, err := New(p)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if evt.Title == nil || *evt.Title != "nullified" {
		t.Error("titles containing 'null' as a substring must survive")
	}
}

func TestNewRejectsTimeWithoutDate(t *testing.T) {
	onlyTime := &DateAndTime{
		Hour: ip(12), Minute: ip(34), Second: ip(56),
	}

	for _, field := range []string{"start", "end"} {
		t.Run(field, func(t *testing.T) {
			p := exampleParams()
			if field == "start" {
				p.Start = onlyTime
			} else {
				p.End = onlyTime
			}

			_, err := New(p)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a ValidationError, got %v", err)
			}
			if verr.Field != field {
				t.Errorf("expected violation on %q, got %q", field, verr.Field)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	onlyDate := dateAndTime(2000, 1, 23)
	onlyTime := &DateAndTime{
		Hour: ip(16), Minute: ip(0), Second: ip(0),
		UTCOffsetHour: ip(0), UTCOffsetMinute: ip(0),
	}

	event1 := &Event{
		Start:           onlyDate,
		End:             &DateAndTime{Hour: ip(16), Minute: ip(0), Second: ip(0), UTCOffsetHour: ip(0), UTCOffsetMinute: ip(0)},
		URL:             sp("http://example1.com"),
		Virtual:         bp(true),
		LocationCountry: sp("Firstlandia"),
		LocationRegion:  sp("Primus"),
		LocationCity:    sp("Onopolis"),
		Approved:        ApprovedPending,
		ScrapeSource:    "Source 1",
		ScrapeDatetime:  time.Date(2010, 1, 11, 0, 0, 0, 0, time.UTC),
	}
	event2 := &Event{
		Title:           sp("Event 2"),
		Start:           onlyTime,
		End:             dateAndTime(2000, 1, 23),
		URL:             sp("http://example2.com"),
		LocationCountry: sp("Second Federation"),
		LocationCity:    sp("Twopolis"),
		Approved:        ApprovedYes,
		ScrapeSource:    "Source 2",
		ScrapeDatetime:  time.Date(2010, 2, 22, 0, 0, 0, 0, time.UTC),
	}

	got := event1.Merge(event2)
	if got != event1 {
		t.Fatal("Merge must return its receiver")
	}

	if *event1.Title != "Event 2" {
		t.Errorf("expected title filled from other, got %q", *event1.Title)
	}
	if event1.Start.String() != "2000-01-23T16:00:00+00:00" {
		t.Errorf("start merged component-wise = %q", event1.Start.String())
	}
	if event1.End.String() != "2000-01-23T16:00:00+00:00" {
		t.Errorf("end merged component-wise = %q", event1.End.String())
	}
	if event1.Description != nil {
		t.Error("description unknown in both records must stay unknown")
	}
	if *event1.URL != "http://example1.com" {
		t.Errorf("known url must be preserved, got %q", *event1.URL)
	}
	if !*event1.Virtual {
		t.Error("known virtual flag must be preserved")
	}
	if *event1.LocationCountry != "Firstlandia" || *event1.LocationRegion != "Primus" || *event1.LocationCity != "Onopolis" {
		t.Error("known locations must be preserved")
	}
	if event1.Approved != ApprovedPending {
		t.Errorf("known approval must be preserved, got %q", event1.Approved)
	}
	if event1.ScrapeSource != "Source 1" {
		t.Errorf("known scrape source must be preserved, got %q", event1.ScrapeSource)
	}
	if !event1.ScrapeDatetime.Equal(time.Date(2010, 1, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("known scrape datetime must be preserved, got %v", event1.ScrapeDatetime)
	}
}

func TestMergeNil(t *testing.T) {
	evt := &Event{Title: sp("Keep")}
	if got := evt.Merge(nil); got != evt || *evt.Title != "Keep" {
		t.Error("merging with nil must be a no-op returning the receiver")
	}
}

func TestApprovedString(t *testing.T) {
	tests := []struct {
		value    Approved
		expected string
	}{
		{ApprovedPending, "pending"},
		{ApprovedYes, "yes"},
		{ApprovedNo, "no"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestFlat(t *testing.T) {
	evt, err := New(exampleParams())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	flat := evt.Flat()
	if flat.Start == nil || *flat.Start != "2000-01-23T10:00:00+00:00" {
		t.Errorf("unexpected start %v", flat.Start)
	}
	if flat.End == nil || *flat.End != "2000-01-23T12:00:00+00:00" {
		t.Errorf("unexpected end %v", flat.End)
	}
	if flat.Approved != "pending" {
		t.Errorf("unexpected approval %q", flat.Approved)
	}
	if flat.ScrapeDatetime != "2010-03-21T01:23:45+00:00" {
		t.Errorf("unexpected scrape datetime %q", flat.ScrapeDatetime)
	}
	if flat.AccessibleToCanadians != nil || flat.OpenToPublic != nil {
		t.Error("review scores must serialize as unknown")
	}
}

func TestFlatJSONFieldOrder(t *testing.T) {
	evt, err := New(exampleParams())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	data, err := json.Marshal(evt.Flat())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, column := range Columns() {
		if _, ok := decoded[column]; !ok {
			t.Errorf("serialized event is missing field %q", column)
		}
	}
	if len(decoded) != len(Columns()) {
		t.Errorf("serialized event has %d fields, expected %d", len(decoded), len(Columns()))
	}
}

func TestFlatRecordLength(t *testing.T) {
	evt := &Event{Approved: ApprovedPending}
	record := evt.Flat().Record()
	if len(record) != len(Columns()) {
		t.Fatalf("record has %d cells, expected %d", len(record), len(Columns()))
	}
	// Unknown start serializes as an empty cell, not a partial value.
	if record[1] != "" {
		t.Errorf("expected empty start cell, got %q", record[1])
	}
}
