// Package template implements the shassist template loader: two fixed
// system prompts for a shell-assistant persona.
package template

import (
	_ "embed"
	"strings"

	"github.com/timvw/tmux-fragments/internal/model"
)

// Prefix is the template loader prefix registered with the host.
const Prefix = "shassist"

// DefaultName is used when the requested name is empty.
const DefaultName = "default"

// DefaultPrompt is the mentor persona.
//
//go:embed prompts/default.md
var DefaultPrompt string

// CommandPrompt is the commands-only persona.
//
//go:embed prompts/command.md
var CommandPrompt string

var prompts = map[string]*string{
	"default": &DefaultPrompt,
	"command": &CommandPrompt,
}

// Names returns the valid template names.
func Names() []string {
	return []string{"default", "command"}
}

// Load is the template loader entry point. Names are matched
// case-insensitively; anything other than "default" or "command" fails with
// ErrTemplateNotFound.
func Load(name string) (model.Template, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}
	system, ok := prompts[key]
	if !ok {
		return model.Template{}, model.NewError(model.ErrTemplateNotFound,
			"Template not found: use %s:%s", Prefix, strings.Join(Names(), "|"))
	}
	return model.Template{
		Name:   Prefix + ":" + key,
		System: *system,
	}, nil
}
