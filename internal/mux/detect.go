package mux

import (
	"context"
	"fmt"
)

// InSession reports whether the caller is inside a tmux session. The TMUX
// environment marker is checked first; otherwise an active-pane query is
// attempted and any failure means "not in a session".
func InSession(ctx context.Context, m Multiplexer, getenv func(string) string) bool {
	if getenv != nil && getenv("TMUX") != "" {
		return true
	}
	if _, err := m.ActivePaneID(ctx); err != nil {
		return false
	}
	return true
}

// FromName creates a Multiplexer by name.
func FromName(name string, opts ...TmuxOption) (Multiplexer, error) {
	switch name {
	case "", "tmux":
		return NewTmux(opts...), nil
	default:
		return nil, fmt.Errorf("unknown multiplexer: %q (supported: tmux)", name)
	}
}
