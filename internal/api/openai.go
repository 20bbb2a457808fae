package api

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/civicminder/event-scraper/internal/event"
	"github.com/civicminder/event-scraper/internal/htmltext"
	"github.com/civicminder/event-scraper/internal/logger"
)

// OpenAI scrapes pages by fetching them directly and asking a chat
// model to extract the events as structured output. Two round-trips
// per scrape: one for the page, one for the model.
type OpenAI struct {
	client *openai.Client
	model  string
	prompt string
	schema *jsonschema.Definition
	fetch  *fetcher
	log    *logger.Logger
}

// NewOpenAI creates a client using the given API key and model.
func NewOpenAI(apiKey, model string, log *logger.Logger) (*OpenAI, error) {
	schema, err := jsonschema.GenerateSchemaForType(event.List{})
	if err != nil {
		return nil, fmt.Errorf("generating response schema: %w", err)
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
		prompt: overviewPrompt,
		schema: schema,
		fetch:  newFetcher(log),
		log:    log,
	}, nil
}

// Scrape fetches the page and extracts its events. The returned
// mapping has the lean response shape: an "events" key holding raw
// item mappings.
func (o *OpenAI) Scrape(url string) (map[string]any, error) {
	page, err := o.fetch.get(url)
	if err != nil {
		return nil, err
	}

	// Drop markup to reduce token count before submitting.
	cleaned, err := htmltext.CleanContent(string(page))
	if err != nil {
		return nil, fmt.Errorf("cleaning page content: %w", err)
	}
	if cleaned == "" {
		return nil, fmt.Errorf("no content found for %s", url)
	}

	completion, err := o.client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: o.prompt},
			{Role: openai.ChatMessageRoleUser, Content: cleaned},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "event_list",
				Schema: o.schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("requesting extraction: %w", err)
	}

	o.log.Debug("Usage information", logger.Fields{
		"prompt_tokens":     completion.Usage.PromptTokens,
		"completion_tokens": completion.Usage.CompletionTokens,
	})

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("model returned no completions for %s", url)
	}
	reply := completion.Choices[0].Message
	if reply.Refusal != "" {
		return nil, fmt.Errorf("model refused to scrape %s: %s", url, reply.Refusal)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(reply.Content), &parsed); err != nil {
		return nil, fmt.Errorf("parsing model reply: %w", err)
	}
	return htmltext.UnescapeEntities(parsed).(map[string]any), nil
}
