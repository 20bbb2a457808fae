// Package event defines the canonical record produced by scraping.
//
// The event package handles event representation, validation, and
// reconciliation. Every field a page might not mention is optional,
// and Merge combines two partial views of the same event (an overview
// listing and its detail page) by filling unknown fields. DateAndTime
// carries timestamps where any component, down to the UTC offset, may
// be unknown.
package event
