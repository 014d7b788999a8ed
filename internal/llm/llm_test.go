package llm

import (
	"testing"

	"github.com/timvw/tmux-fragments/internal/model"
)

func TestBuildUserMessage(t *testing.T) {
	frags := []model.Fragment{
		{Source: "tmux:%1:10", Content: "<pane id=\"%1\" active=\"true\">\nerr\n</pane>"},
		{Source: "tmux:sys", Content: "<system_info>\n</system_info>"},
	}

	tests := []struct {
		name     string
		frags    []model.Fragment
		question string
		want     string
	}{
		{
			name:     "fragments then question",
			frags:    frags,
			question: " why did this fail? ",
			want:     "<pane id=\"%1\" active=\"true\">\nerr\n</pane>\n\n<system_info>\n</system_info>\n\nwhy did this fail?",
		},
		{
			name:  "no question",
			frags: frags[:1],
			want:  "<pane id=\"%1\" active=\"true\">\nerr\n</pane>",
		},
		{
			name:     "no fragments",
			question: "list files",
			want:     "list files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildUserMessage(tt.frags, tt.question); got != tt.want {
				t.Errorf("BuildUserMessage() =\n  %q\nwant:\n  %q", got, tt.want)
			}
		})
	}
}

func TestConstructorsApplyDefaults(t *testing.T) {
	a := NewAnthropicCompleter(AnthropicConfig{APIKey: "k", Model: "claude-sonnet-4-5"})
	if a.Provider() != "anthropic" || a.Model() != "claude-sonnet-4-5" {
		t.Errorf("anthropic: got %s/%s", a.Provider(), a.Model())
	}
	if a.maxTokens != 4096 {
		t.Errorf("anthropic maxTokens: got %d, want 4096", a.maxTokens)
	}

	o := NewOpenAICompleter(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", MaxTokens: 512})
	if o.Provider() != "openai" || o.Model() != "gpt-4o-mini" {
		t.Errorf("openai: got %s/%s", o.Provider(), o.Model())
	}
	if o.maxTokens != 512 {
		t.Errorf("openai maxTokens: got %d, want 512", o.maxTokens)
	}
}
