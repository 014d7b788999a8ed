package template

import (
	"errors"
	"strings"
	"testing"

	"github.com/timvw/tmux-fragments/internal/model"
)

func TestPromptsLoaded(t *testing.T) {
	if DefaultPrompt == "" {
		t.Error("DefaultPrompt is empty; embed directive may have failed")
	}
	if CommandPrompt == "" {
		t.Error("CommandPrompt is empty; embed directive may have failed")
	}
	if DefaultPrompt == CommandPrompt {
		t.Error("prompts must be distinct")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantSystem string
	}{
		{name: "empty is default", input: "", wantName: "shassist:default", wantSystem: DefaultPrompt},
		{name: "default", input: "default", wantName: "shassist:default", wantSystem: DefaultPrompt},
		{name: "command", input: "command", wantName: "shassist:command", wantSystem: CommandPrompt},
		{name: "case and whitespace", input: "  Command ", wantName: "shassist:command", wantSystem: CommandPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.input)
			if err != nil {
				t.Fatalf("Load(%q): unexpected error: %v", tt.input, err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name: got %q, want %q", got.Name, tt.wantName)
			}
			if got.System != tt.wantSystem {
				t.Errorf("System: got %q, want %q", got.System, tt.wantSystem)
			}
		})
	}
}

func TestLoad_Content(t *testing.T) {
	def, _ := Load("default")
	if !strings.HasPrefix(def.System, "<assistant>\nYou are a shell mentor.") {
		t.Errorf("default prompt has unexpected start: %q", def.System[:40])
	}
	cmd, _ := Load("command")
	if !strings.Contains(cmd.System, "# WARNING") {
		t.Error("command prompt should mention # WARNING")
	}
}

func TestLoad_Unknown(t *testing.T) {
	for _, name := range []string{"verbose", "default:1", "shassist:default"} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(name)
			if !errors.Is(err, model.ErrTemplateNotFound) {
				t.Fatalf("expected ErrTemplateNotFound, got %v", err)
			}
			if got, want := err.Error(), "Template not found: use shassist:default|command"; got != want {
				t.Errorf("Error(): got %q, want %q", got, want)
			}
		})
	}
}
