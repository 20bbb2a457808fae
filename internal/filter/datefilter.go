package filter

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"time"
)

// ErrSelector is returned when ExcludeOldItems is called with zero or
// two selectors. This is caller misuse, not bad data, so it surfaces
// immediately instead of degrading.
var ErrSelector = errors.New("exactly one of WithKey and WithAttribute must be given")

// Option selects how an item is mapped to its date.
type Option[T any] func(*settings[T])

type settings[T any] struct {
	key       func(T) time.Time
	attribute string
}

// WithKey maps items to dates through fn. A zero time means the date
// is unknown; unknown dates are treated as ancient and excluded.
func WithKey[T any](fn func(T) time.Time) Option[T] {
	return func(s *settings[T]) {
		s.key = fn
	}
}

// WithAttribute maps items to dates by reading the named struct field,
// which must be a time.Time or *time.Time. A nil or zero value is
// treated the same as an unknown date.
func WithAttribute[T any](name string) Option[T] {
	return func(s *settings[T]) {
		s.attribute = name
	}
}

// ExcludeOldItems lazily filters items, keeping those whose date is on
// or after cutoff. A zero cutoff means today in local time. Exactly
// one selector option must be given; anything else is an immediate
// error, before any iteration happens.
func ExcludeOldItems[T any](items iter.Seq[T], cutoff time.Time, opts ...Option[T]) (iter.Seq[T], error) {
	var s settings[T]
	for _, opt := range opts {
		opt(&s)
	}
	if (s.key == nil) == (s.attribute == "") {
		return nil, ErrSelector
	}

	key := s.key
	if key == nil {
		var err error
		key, err = attributeKey[T](s.attribute)
		if err != nil {
			return nil, err
		}
	}

	if cutoff.IsZero() {
		cutoff = time.Now()
	}
	cutoffDay := dateOnly(cutoff)

	return func(yield func(T) bool) {
		for item := range items {
			if dateOnly(key(item)).Before(cutoffDay) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}, nil
}

// attributeKey builds a key function reading the named field through
// reflection. The field must exist on T (or the struct T points to)
// and hold a time.Time or *time.Time.
func attributeKey[T any](name string) (func(T) time.Time, error) {
	var probe T
	t := reflect.TypeOf(&probe).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("attribute selector needs a struct item type, got %s", t)
	}
	field, ok := t.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("attribute %q not found on %s", name, t)
	}
	timeType := reflect.TypeOf(time.Time{})
	if field.Type != timeType && field.Type != reflect.PointerTo(timeType) {
		return nil, fmt.Errorf("attribute %q must be time.Time or *time.Time, got %s", name, field.Type)
	}

	return func(item T) time.Time {
		v := reflect.ValueOf(item)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return time.Time{}
			}
			v = v.Elem()
		}
		fv := v.FieldByIndex(field.Index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				return time.Time{}
			}
			fv = fv.Elem()
		}
		return fv.Interface().(time.Time)
	}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
