package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/civicminder/event-scraper/internal/htmltext"
	"github.com/civicminder/event-scraper/internal/logger"
)

// InstantAPI scrapes webpages using InstantAPI, which fetches and
// extracts in a single call.
//
// The API documentation lives here:
//
//	https://instantapi.ai/docs/retrieve/api-endpoint/
type InstantAPI struct {
	endpoint string
	apiKey   string
	prompt   string
	client   *http.Client
	log      *logger.Logger
}

const instantEndpoint = "https://instantapi.ai/api/retrieve/"

// NewInstantAPI creates a client using the given API key.
func NewInstantAPI(apiKey string, log *logger.Logger) *InstantAPI {
	return &InstantAPI{
		endpoint: instantEndpoint,
		apiKey:   apiKey,
		prompt:   stringifyPrompt(promptFields),
		client:   &http.Client{Timeout: 2 * time.Minute},
		log:      log,
	}
}

// stringifyPrompt converts a prompt mapping into the string form
// InstantAPI expects: a JSON object rendered as a JSON string, so the
// inner quotation marks are escaped. Marshalling twice produces
// exactly that.
func stringifyPrompt(prompt map[string]any) string {
	inner, err := json.Marshal(prompt)
	if err != nil {
		// The prompt is a package-level literal; failing to encode it
		// is a programmer error.
		panic(fmt.Sprintf("encoding prompt: %v", err))
	}
	outer, err := json.Marshal(string(inner))
	if err != nil {
		panic(fmt.Sprintf("encoding prompt: %v", err))
	}
	return string(outer)
}

// Scrape submits the URL for extraction and returns the response as a
// loosely-typed mapping.
func (a *InstantAPI) Scrape(url string) (map[string]any, error) {
	payload, err := json.Marshal(map[string]string{
		"webpage_url":            url,
		"api_method_name":        MethodName,
		"api_response_structure": a.prompt,
		"api_key":                a.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	resp, err := a.client.Post(a.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("requesting extraction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.log.Warn("Request rejected", logger.Fields{
			"url":    url,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return htmltext.UnescapeEntities(parsed).(map[string]any), nil
}
