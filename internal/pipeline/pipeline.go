// Package pipeline orchestrates scraping into an event stream.
//
// Each source is processed fully before the next: scrape the overview
// page, parse its events, follow each event's own URL for a detail
// scrape, reconcile the two records, and drop what is still unusable.
// The result is a lazy, single-pass sequence; nothing is scraped until
// the consumer pulls.
package pipeline

import (
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/civicminder/event-scraper/internal/event"
	"github.com/civicminder/event-scraper/internal/logger"
	"github.com/civicminder/event-scraper/internal/parser"
)

// API is the extraction collaborator: given a URL, return the
// response mapping or an error. Errors cover ordinary scrape failures
// and are absorbed here; they never abort the batch.
type API interface {
	Scrape(url string) (map[string]any, error)
}

// Pipeline drives the scrape for a list of sources.
type Pipeline struct {
	api     API
	log     *logger.Logger
	metrics *logger.Metrics
	now     func() time.Time
}

// New creates a pipeline using the given extraction client.
func New(api API, log *logger.Logger) *Pipeline {
	return &Pipeline{
		api:     api,
		log:     log,
		metrics: logger.NewMetrics(),
		now:     time.Now,
	}
}

// Metrics exposes the pipeline's counters and timings.
func (p *Pipeline) Metrics() *logger.Metrics {
	return p.metrics
}

// FetchEvents scrapes every source in order and yields the surviving
// events. A source that fails to scrape is skipped; an event without
// a title after detail-page reconciliation is dropped as noise. The
// sequence is lazy and single-pass, and no state carries across
// sources.
func (p *Pipeline) FetchEvents(sourceURLs []string) iter.Seq[*event.Event] {
	return func(yield func(*event.Event) bool) {
		runID := uuid.NewString()
		for _, source := range sourceURLs {
			p.log.Info("Scraping events", logger.Fields{
				"run_id": runID,
				"source": source,
			})

			started := p.now()
			response, err := p.api.Scrape(source)
			p.metrics.RecordTiming("scrape.source", p.now().Sub(started))
			if err != nil {
				p.log.Warn("Skipping source", logger.Fields{
					"run_id": runID,
					"source": source,
					"error":  err.Error(),
				})
				continue
			}
			if response == nil {
				continue
			}

			scrapedAt := p.now().UTC()
			for evt := range parser.Response(response, source, scrapedAt) {
				p.metrics.IncrCounter("events.parsed")
				p.enrichFromDetailPage(runID, evt)

				if evt.Title == nil {
					p.metrics.IncrCounter("events.dropped")
					p.log.Debug("Dropping untitled event", logger.Fields{
						"run_id": runID,
						"source": source,
					})
					continue
				}
				if !yield(evt) {
					return
				}
			}
		}
	}
}

// enrichFromDetailPage scrapes the event's own page and uses the
// result to fill fields the overview listing left unknown. The
// overview URL is the stable canonical identifier, so it is kept even
// when the detail page claims a different one for itself. Any failure
// leaves the overview event untouched.
func (p *Pipeline) enrichFromDetailPage(runID string, evt *event.Event) {
	if evt.URL == nil || *evt.URL == "" || *evt.URL == evt.ScrapeSource {
		return
	}
	detailURL := *evt.URL

	response, err := p.api.Scrape(detailURL)
	if err != nil {
		p.log.Debug("Detail scrape failed", logger.Fields{
			"run_id": runID,
			"url":    detailURL,
			"error":  err.Error(),
		})
		return
	}
	if response == nil {
		return
	}

	var detail *event.Event
	for d := range parser.Response(response, detailURL, p.now().UTC()) {
		detail = d
		break
	}
	if detail == nil {
		return
	}

	overviewURL := evt.URL
	evt.Merge(detail)
	evt.URL = overviewURL
	p.metrics.IncrCounter("events.enriched")
}
