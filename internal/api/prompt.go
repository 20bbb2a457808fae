package api

// MethodName identifies the extraction call to field-description APIs.
const MethodName = "scrape_event_information"

// promptFields describes the expected response structure for
// extraction APIs that take a field-by-field prompt, keyed by the
// wire names the parser consumes.
var promptFields = map[string]any{
	"events": []any{
		map[string]any{
			"event_name":        "<The name of the event>",
			"start_date":        "<The date the event starts, excluding the time, in ISO-8601 format. If the date is not provided, this field is the empty string.>",
			"start_time":        "<The time the event starts in ISO-8601 format including the UTC offset. If the time is not provided, this field is the empty string.>",
			"end_date":          "<The date the event ends, excluding the time, in ISO-8601 format. If the date is not provided, this field is the empty string.>",
			"end_time":          "<The time the event ends in ISO-8601 format including the UTC offset. If the time is not provided, this field is the empty string.>",
			"event_description": "<A short description of the event in one to three sentences if one is present. Otherwise, the empty string.>",
			"event_url":         "<The full URL for the event. If no URL is provided, this field is the empty string.>",
			"event_attendence":  "<How participants will join the event: either 'in-person', 'virtual' or 'hybrid'>",
			"event_country":     "<The country the event is located in, if provided. For in-person or hybrid events without a listed location, this field is the empty string. For virtual events, this is set to 'online'.>",
			"event_region":      "<The region (state, province, etc.) the event is located in, if provided. For in-person or hybrid events without a listed location, this field is the empty string. For virtual events, this is set to 'online'.>",
			"event_city":        "<The city the event is located in, if provided. For in-person or hybrid events without a listed location, this field is the empty string. For virtual events, this is set to 'online'.>",
		},
	},
}

// overviewPrompt instructs a chat model to extract every event from a
// page of listings.
const overviewPrompt = `You are an assistant that extracts event listings from web page text.

The user message is the visible text of a web page. Find every event it
describes and return them under the "events" key, one object per event,
in the order they appear on the page.

For each event fill in:
- event_name: the name of the event.
- start_date, end_date: ISO-8601 dates (YYYY-MM-DD), excluding the time.
- start_time, end_time: ISO-8601 times including the UTC offset when the
  page gives one.
- event_description: a short description in one to three sentences.
- event_url: the full URL for the event, or the path exactly as it
  appears in the page.
- event_attendence: how participants join: 'in-person', 'virtual' or
  'hybrid'.
- event_country, event_region, event_city: where the event is located.
  For virtual events use 'online' for all three.

Use the empty string for any field the page does not provide. Do not
guess or invent values.`
