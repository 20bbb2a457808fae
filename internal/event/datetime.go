package event

import (
	"fmt"
	"time"
)

// DateAndTime is a calendar timestamp where any part may be unknown.
// Each component is independently optional so that partial knowledge
// from a scraped page ("the event is on March 3rd, sometime") can be
// represented without inventing values.
type DateAndTime struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`

	Hour   *int `json:"hour"`
	Minute *int `json:"minute"`
	Second *int `json:"second"`

	UTCOffsetHour   *int `json:"utc_offset_hour"`
	UTCOffsetMinute *int `json:"utc_offset_minute"`
}

// HasDate reports whether every date component is known.
func (dt *DateAndTime) HasDate() bool {
	return dt != nil && dt.Year != nil && dt.Month != nil && dt.Day != nil
}

// HasTime reports whether every time component is known.
func (dt *DateAndTime) HasTime() bool {
	return dt != nil && dt.Hour != nil && dt.Minute != nil && dt.Second != nil
}

// HasOffset reports whether the UTC offset is known.
func (dt *DateAndTime) HasOffset() bool {
	return dt != nil && dt.UTCOffsetHour != nil && dt.UTCOffsetMinute != nil
}

// Date returns the date view as midnight UTC.
// The second return value is false when any date component is unknown.
func (dt *DateAndTime) Date() (time.Time, bool) {
	if !dt.HasDate() {
		return time.Time{}, false
	}
	return time.Date(*dt.Year, time.Month(*dt.Month), *dt.Day, 0, 0, 0, 0, time.UTC), true
}

// Merge fills every nil component of dt with the corresponding
// component of other, in place. Known components are never overwritten.
func (dt *DateAndTime) Merge(other *DateAndTime) {
	if dt == nil || other == nil {
		return
	}
	if dt.Year == nil {
		dt.Year = other.Year
	}
	if dt.Month == nil {
		dt.Month = other.Month
	}
	if dt.Day == nil {
		dt.Day = other.Day
	}
	if dt.Hour == nil {
		dt.Hour = other.Hour
	}
	if dt.Minute == nil {
		dt.Minute = other.Minute
	}
	if dt.Second == nil {
		dt.Second = other.Second
	}
	if dt.UTCOffsetHour == nil {
		dt.UTCOffsetHour = other.UTCOffsetHour
	}
	if dt.UTCOffsetMinute == nil {
		dt.UTCOffsetMinute = other.UTCOffsetMinute
	}
}

// String serializes to ISO-8601, truncated to seconds.
//
// An unknown date serializes to the empty string even when the time is
// known: a time with no date is meaningless in the output, so it is
// dropped at this boundary. A known date with an unknown time
// serializes as a plain date. The UTC offset is appended only when
// both offset components are known.
func (dt *DateAndTime) String() string {
	if !dt.HasDate() {
		return ""
	}
	s := fmt.Sprintf("%04d-%02d-%02d", *dt.Year, *dt.Month, *dt.Day)
	if !dt.HasTime() {
		return s
	}
	s += fmt.Sprintf("T%02d:%02d:%02d", *dt.Hour, *dt.Minute, *dt.Second)
	if dt.HasOffset() {
		total := *dt.UTCOffsetHour*60 + *dt.UTCOffsetMinute
		sign := "+"
		if total < 0 {
			sign = "-"
			total = -total
		}
		s += fmt.Sprintf("%s%02d:%02d", sign, total/60, total%60)
	}
	return s
}
