// Package filter removes stale items from a scraped stream.
//
// The only filter is a cutoff date: items dated before it are
// excluded, items with no usable date are treated as ancient and
// excluded too. Filtering is lazy so it composes with the pipeline's
// single-pass event sequence.
package filter
