// Package cli wires the scraper together behind the command line.
//
// It owns flag parsing, configuration loading, engine selection, and
// the scrape → filter → write flow. Everything interesting lives in
// the packages it composes.
package cli
