package parser

import (
	"time"

	"github.com/civicminder/event-scraper/internal/event"
)

// Time layouts accepted from the extraction API, tried in order. The
// API is asked for ISO-8601 with a UTC offset, but pages often omit
// the offset or the seconds, and occasionally carry fractional
// seconds.
var timeLayouts = []string{
	"15:04:05.999999999Z07:00",
	"15:04:05Z07:00",
	"15:04Z07:00",
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
}

// ParseDateAndTime combines a date string and a time string into a
// DateAndTime.
//
// The date must be strict ISO-8601 (2006-01-02); if it does not parse,
// the whole value is nil, since a time of day with no date is useless
// downstream. If only the time fails to parse, the date half is kept.
// Empty strings count as parse failures. Fractional seconds are
// truncated, never rounded.
func ParseDateAndTime(dateString, timeString string) *event.DateAndTime {
	d, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return nil
	}

	dt := &event.DateAndTime{
		Year:  intPtr(d.Year()),
		Month: intPtr(int(d.Month())),
		Day:   intPtr(d.Day()),
	}

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, timeString)
		if err != nil {
			continue
		}
		dt.Hour = intPtr(t.Hour())
		dt.Minute = intPtr(t.Minute())
		dt.Second = intPtr(t.Second())
		if hasOffset(layout) {
			_, offset := t.Zone()
			dt.UTCOffsetHour = intPtr(offset / 3600)
			dt.UTCOffsetMinute = intPtr(offset % 3600 / 60)
		}
		break
	}

	return dt
}

func hasOffset(layout string) bool {
	return len(layout) >= 6 && layout[len(layout)-6:] == "Z07:00"
}

func intPtr(v int) *int {
	return &v
}
