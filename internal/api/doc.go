// Package api provides clients for the scraping extraction services.
//
// A client takes a page URL and returns the extraction result as a
// loosely-typed JSON mapping for the parser to pick apart. Ordinary
// failures (network errors, blocked requests, model refusals, garbage
// replies) come back as errors for the caller to log and skip; a bad
// page never aborts a batch.
package api
