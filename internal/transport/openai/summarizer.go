package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	"github.com/kailas-cloud/cmsdash/internal/metrics"
	"github.com/kailas-cloud/cmsdash/internal/util/text"
)

const (
	// DefaultPrompt instructs the model to write a page excerpt.
	DefaultPrompt = "Summarize the following web page content as a single plain-text sentence " +
		"suitable for a page excerpt. Do not use markdown or quotes."
	// DefaultMaxTokens caps the completion length.
	DefaultMaxTokens = 120
	// MaxInputRunes caps the content sent to the model.
	MaxInputRunes = 8000
)

// Summarizer writes page excerpts using an OpenAI-compatible chat completion API.
type Summarizer struct {
	client      *openai.Client
	model       string
	prompt      string
	maxTokens   int
	temperature float32
	user        string
	logger      *zap.Logger
}

// Config holds the assistant provider settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float32
	User        string
	Logger      *zap.Logger
}

// NewSummarizer creates an OpenAI-compatible summarizer.
func NewSummarizer(cfg *Config) *Summarizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	s := &Summarizer{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		prompt:      cfg.Prompt,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		user:        cfg.User,
		logger:      cfg.Logger,
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.maxTokens <= 0 {
		s.maxTokens = DefaultMaxTokens
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Summarize implements domain.Summarizer.
func (s *Summarizer) Summarize(ctx context.Context, content string) (domain.Summary, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.prompt},
			{Role: openai.ChatMessageRoleUser, Content: text.TruncateWith(content, MaxInputRunes, "")},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		User:        s.user,
	}

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, req)
	duration := time.Since(start)

	if err != nil {
		metrics.AssistantRequestsTotal.WithLabelValues(s.model, "error").Inc()
		s.logger.Warn("assistant request failed", zap.String("model", s.model), zap.Error(err))
		return domain.Summary{}, parseAPIError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		metrics.AssistantRequestsTotal.WithLabelValues(s.model, "error").Inc()
		return domain.Summary{}, fmt.Errorf("empty completion response: %w", domain.ErrAssistantError)
	}

	metrics.AssistantRequestsTotal.WithLabelValues(s.model, "success").Inc()
	metrics.AssistantRequestDuration.WithLabelValues(s.model).Observe(duration.Seconds())
	metrics.AssistantTokensTotal.WithLabelValues(s.model, "prompt").Add(float64(resp.Usage.PromptTokens))
	metrics.AssistantTokensTotal.WithLabelValues(s.model, "completion").Add(float64(resp.Usage.CompletionTokens))

	s.logger.Debug("assistant summary generated",
		zap.String("model", s.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("duration", duration),
	)

	return domain.Summary{
		Text:             strings.TrimSpace(resp.Choices[0].Message.Content),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// HealthCheck verifies API availability via ListModels.
func (s *Summarizer) HealthCheck(ctx context.Context) error {
	if _, err := s.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseAPIError wraps every provider failure with domain.ErrAssistantError
// so the transport maps it to 502.
func parseAPIError(err error) error {
	wrap := domain.ErrAssistantError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail == "" {
			detail = string(reqErr.Body)
		}
		return fmt.Errorf("assistant API error %d: %s: %w", reqErr.HTTPStatusCode, detail, wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("assistant API error %d: %s: %w", apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("assistant request failed: %w", wrap)
}

// extractDetail reads the "detail" field some OpenAI-compatible providers
// return instead of the standard error object.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
