package domain

import "context"

// Summarizer condenses page content into a short excerpt.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (Summary, error)
}

// Summary carries the generated text and token usage.
type Summary struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}
