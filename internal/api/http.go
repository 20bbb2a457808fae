package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/civicminder/event-scraper/internal/logger"
)

const (
	fetchTimeout = 30 * time.Second
	maxRetries   = 3
)

// Headers sent when fetching pages. Some sites block the default Go
// user agent even though their robots.txt allows scraping.
var pageHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:132.0) Gecko/20100101 Firefox/132.0",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Connection":      "keep-alive",
}

// fetcher downloads pages with browser-like headers, retrying
// transient failures with exponential backoff.
type fetcher struct {
	client *http.Client
	log    *logger.Logger
}

func newFetcher(log *logger.Logger) *fetcher {
	return &fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// get downloads the page body. Network errors and 5xx responses are
// retried; other non-2xx statuses fail immediately.
func (f *fetcher) get(url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		for name, value := range pageHeaders {
			req.Header.Set(name, value)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %s", resp.Status)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			f.log.Warn("Request rejected", logger.Fields{
				"url":    url,
				"status": resp.StatusCode,
			})
			return backoff.Permanent(fmt.Errorf("unexpected status: %s", resp.Status))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries))
	if err != nil {
		return nil, err
	}
	return body, nil
}
