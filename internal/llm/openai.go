package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/timvw/tmux-fragments/internal/model"
	"go.opentelemetry.io/otel/attribute"
)

// OpenAICompleter uses an OpenAI-compatible Chat Completions API.
type OpenAICompleter struct {
	client    openai.Client
	model     string
	maxTokens int64
}

// OpenAIConfig holds configuration for the OpenAI completer.
type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	// MaxTokens must leave room for reasoning tokens on reasoning models.
	MaxTokens int64
}

// NewOpenAICompleter creates a new OpenAI-compatible completer.
func NewOpenAICompleter(cfg OpenAIConfig) *OpenAICompleter {
	var opts []option.RequestOption
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &OpenAICompleter{
		client:    openai.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// Provider returns "openai".
func (c *OpenAICompleter) Provider() string {
	return "openai"
}

// Model returns the model name.
func (c *OpenAICompleter) Model() string {
	return c.model
}

// Complete sends the exchange to the Chat Completions API.
func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (*Completion, error) {
	ctx, span := startSpan(ctx, c.Provider(), c.model, c.maxTokens, system, user)
	defer span.End()

	var messages []openai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(user))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               c.model,
		Messages:            messages,
		MaxCompletionTokens: openai.Int(c.maxTokens),
	})
	if err != nil {
		span.SetAttributes(attribute.String("error.type", "api_error"))
		return nil, fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		span.SetAttributes(attribute.String("error.type", "empty_response"))
		return nil, fmt.Errorf("openai API returned empty response")
	}

	completion := &Completion{
		Text:         resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: model.TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}
	span.SetAttributes(attribute.String("gen_ai.response.id", resp.ID))
	endSpan(span, resp.Model, completion)
	return completion, nil
}
