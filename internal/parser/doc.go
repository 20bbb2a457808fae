// Package parser converts raw extraction-API responses into events.
//
// The parser trusts nothing about the response shape: each field is
// fetched with a runtime type check and degrades to unknown on its
// own, dates and times fail closed and open respectively, and items
// that still cannot form a valid event are dropped without aborting
// the batch.
package parser
