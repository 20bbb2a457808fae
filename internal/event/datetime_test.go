package event

import (
	"testing"
	"time"
)

func ip(v int) *int {
	return &v
}

func dateAndTime(year, month, day int) *DateAndTime {
	return &DateAndTime{Year: ip(year), Month: ip(month), Day: ip(day)}
}

func TestDateAndTimeString(t *testing.T) {
	tests := []struct {
		name     string
		dt       *DateAndTime
		expected string
	}{
		{
			name:     "date only",
			dt:       dateAndTime(2000, 1, 23),
			expected: "2000-01-23",
		},
		{
			name: "naive time",
			dt: &DateAndTime{
				Year: ip(2000), Month: ip(1), Day: ip(23),
				Hour: ip(12), Minute: ip(34), Second: ip(56),
			},
			expected: "2000-01-23T12:34:56",
		},
		{
			name: "aware time",
			dt: &DateAndTime{
				Year: ip(2000), Month: ip(1), Day: ip(23),
				Hour: ip(12), Minute: ip(34), Second: ip(56),
				UTCOffsetHour: ip(0), UTCOffsetMinute: ip(0),
			},
			expected: "2000-01-23T12:34:56+00:00",
		},
		{
			name: "negative offset",
			dt: &DateAndTime{
				Year: ip(2000), Month: ip(1), Day: ip(23),
				Hour: ip(12), Minute: ip(34), Second: ip(56),
				UTCOffsetHour: ip(-5), UTCOffsetMinute: ip(0),
			},
			expected: "2000-01-23T12:34:56-05:00",
		},
		{
			name: "partial time is not emitted",
			dt: &DateAndTime{
				Year: ip(2000), Month: ip(1), Day: ip(23),
				Hour: ip(12),
			},
			expected: "2000-01-23",
		},
		{
			name: "time without date serializes to nothing",
			dt: &DateAndTime{
				Hour: ip(12), Minute: ip(34), Second: ip(56),
			},
			expected: "",
		},
		{
			name:     "all unknown",
			dt:       &DateAndTime{},
			expected: "",
		},
		{
			name:     "nil value",
			dt:       nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dt.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestDateAndTimeDate(t *testing.T) {
	dt := dateAndTime(2000, 1, 23)
	d, ok := dt.Date()
	if !ok {
		t.Fatal("expected a date view")
	}
	expected := time.Date(2000, time.January, 23, 0, 0, 0, 0, time.UTC)
	if !d.Equal(expected) {
		t.Errorf("Date() = %v, expected %v", d, expected)
	}

	if _, ok := (&DateAndTime{Year: ip(2000), Month: ip(1)}).Date(); ok {
		t.Error("expected no date view when day is unknown")
	}
	var nilDT *DateAndTime
	if _, ok := nilDT.Date(); ok {
		t.Error("expected no date view on nil value")
	}
}

func TestDateAndTimeMerge(t *testing.T) {
	onlyDate := dateAndTime(2000, 1, 23)
	onlyTime := &DateAndTime{
		Hour: ip(16), Minute: ip(0), Second: ip(0),
		UTCOffsetHour: ip(0), UTCOffsetMinute: ip(0),
	}

	onlyDate.Merge(onlyTime)

	if onlyDate.String() != "2000-01-23T16:00:00+00:00" {
		t.Errorf("merged value = %q, expected %q", onlyDate.String(), "2000-01-23T16:00:00+00:00")
	}
}

func TestDateAndTimeMergeKeepsKnownComponents(t *testing.T) {
	dt := dateAndTime(2000, 1, 23)
	dt.Merge(dateAndTime(1999, 12, 31))

	if *dt.Year != 2000 || *dt.Month != 1 || *dt.Day != 23 {
		t.Errorf("merge overwrote known components: %s", dt)
	}
}

func TestDateAndTimeMergeNil(t *testing.T) {
	dt := dateAndTime(2000, 1, 23)
	dt.Merge(nil)
	if dt.String() != "2000-01-23" {
		t.Errorf("merge with nil changed value to %q", dt.String())
	}

	var nilDT *DateAndTime
	// Must not panic.
	nilDT.Merge(dateAndTime(2000, 1, 23))
}
