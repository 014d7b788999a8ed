package mux

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/timvw/tmux-fragments/internal/cmdexec"
	"go.uber.org/zap"
)

// Tmux implements Multiplexer by shelling out to the tmux binary.
type Tmux struct {
	binary       string
	exec         cmdexec.Commander
	logger       *zap.Logger
	defaultLimit int
}

// TmuxOption configures a Tmux client.
type TmuxOption func(*Tmux)

// WithBinary overrides the tmux binary name or path.
func WithBinary(binary string) TmuxOption {
	return func(t *Tmux) {
		if binary != "" {
			t.binary = binary
		}
	}
}

// WithCommander overrides how commands are executed.
func WithCommander(c cmdexec.Commander) TmuxOption {
	return func(t *Tmux) {
		if c != nil {
			t.exec = c
		}
	}
}

// WithLogger sets the logger used for query tracing.
func WithLogger(l *zap.Logger) TmuxOption {
	return func(t *Tmux) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithDefaultHistoryLimit overrides the history limit fallback.
func WithDefaultHistoryLimit(n int) TmuxOption {
	return func(t *Tmux) {
		if n > 0 {
			t.defaultLimit = n
		}
	}
}

// NewTmux creates a new tmux multiplexer.
func NewTmux(opts ...TmuxOption) *Tmux {
	t := &Tmux{
		binary:       "tmux",
		exec:         &cmdexec.RealCommander{},
		logger:       zap.NewNop(),
		defaultLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns "tmux".
func (t *Tmux) Name() string {
	return "tmux"
}

// ActivePaneID returns the active pane id via display-message.
func (t *Tmux) ActivePaneID(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "display-message", "-p", "#{pane_id}")
	if err != nil {
		return "", fmt.Errorf("tmux display-message: %w", err)
	}
	return out, nil
}

// HistoryLimit returns #{history-limit}, or the fallback when tmux errors or
// reports something that is not a plain digit string.
func (t *Tmux) HistoryLimit(ctx context.Context) int {
	out, err := t.run(ctx, "display-message", "-p", "#{history-limit}")
	if err != nil {
		t.logger.Debug("history-limit query failed, using fallback",
			zap.Int("fallback", t.defaultLimit), zap.Error(err))
		return t.defaultLimit
	}
	if !isDigits(out) {
		t.logger.Debug("history-limit not numeric, using fallback",
			zap.String("value", out), zap.Int("fallback", t.defaultLimit))
		return t.defaultLimit
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return t.defaultLimit
	}
	return n
}

// ListPaneIDs returns the pane ids of the current window in listing order.
func (t *Tmux) ListPaneIDs(ctx context.Context) ([]string, error) {
	out, err := t.run(ctx, "list-panes", "-F", "#{pane_id}")
	if err != nil {
		return nil, fmt.Errorf("tmux list-panes: %w", err)
	}

	var ids []string
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	return ids, nil
}

// CapturePane captures the last lines of a pane with capture-pane -p -S -N.
func (t *Tmux) CapturePane(ctx context.Context, lines int, paneID string) (string, error) {
	args := []string{"capture-pane", "-p", "-S", fmt.Sprintf("-%d", lines)}
	if paneID != "" {
		args = append(args, "-t", paneID)
	}
	out, err := t.run(ctx, args...)
	if err != nil {
		if paneID == "" {
			return "", fmt.Errorf("tmux capture-pane: %w", err)
		}
		return "", fmt.Errorf("tmux capture-pane -t %s: %w", paneID, err)
	}
	return out, nil
}

// run executes a tmux command and returns its trimmed stdout.
func (t *Tmux) run(ctx context.Context, args ...string) (string, error) {
	t.logger.Debug("tmux query", zap.Strings("args", args))
	out, err := t.exec.Run(ctx, t.binary, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
