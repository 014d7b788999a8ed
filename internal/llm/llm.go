// Package llm sends a system prompt plus fragment context to an LLM
// provider. It backs the ask command, which plays the host role locally.
package llm

import (
	"context"
	"strings"

	"github.com/timvw/tmux-fragments/internal/model"
)

// Completer sends one system + user exchange and returns the reply.
type Completer interface {
	Complete(ctx context.Context, system, user string) (*Completion, error)

	// Provider returns the provider name (e.g., "anthropic", "openai").
	Provider() string

	// Model returns the model name.
	Model() string
}

// Completion is a provider reply.
type Completion struct {
	Text         string
	FinishReason string
	Usage        model.TokenUsage
}

// BuildUserMessage places fragments before the question, separated by
// blank lines, the way the host concatenates fragments into a prompt.
func BuildUserMessage(frags []model.Fragment, question string) string {
	parts := make([]string, 0, len(frags)+1)
	for _, f := range frags {
		parts = append(parts, f.Content)
	}
	if q := strings.TrimSpace(question); q != "" {
		parts = append(parts, q)
	}
	return strings.Join(parts, "\n\n")
}
