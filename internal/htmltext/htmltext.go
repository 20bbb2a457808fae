// Package htmltext prepares scraped HTML for the extraction API.
//
// Pages go to the language model as plain text: boilerplate markup is
// stripped to cut token count, and HTML entities that survive into the
// API's JSON replies are converted back to their Unicode characters.
package htmltext

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elements that never carry event information. Dropping them before
// text extraction keeps the prompt small.
var strippedSelectors = []string{
	"script",
	"style",
	"noscript",
	"template",
	"iframe",
	"svg",
	"head",
}

// CleanContent reduces an HTML document to its visible text. Runs of
// whitespace collapse to single spaces. Returns the empty string when
// the document has no text content.
func CleanContent(htmlText string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return "", err
	}
	for _, selector := range strippedSelectors {
		doc.Find(selector).Remove()
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// UnescapeEntities converts HTML entities to their corresponding
// Unicode characters in data parsed from JSON. Strings are unescaped,
// lists and maps are converted recursively, and everything else passes
// through unchanged.
func UnescapeEntities(data any) any {
	switch value := data.(type) {
	case string:
		return html.UnescapeString(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = UnescapeEntities(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			out[key] = UnescapeEntities(item)
		}
		return out
	}
	return data
}
