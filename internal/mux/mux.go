// Package mux provides read-only access to a terminal multiplexer.
//
// This package is pure transport: it returns trimmed multiplexer output and
// never interprets pane content.
package mux

import "context"

// DefaultHistoryLimit is used when the multiplexer does not report a usable
// history limit.
const DefaultHistoryLimit = 3000

// Multiplexer abstracts the multiplexer queries the fragment loader needs.
type Multiplexer interface {
	// Name returns the multiplexer name (e.g., "tmux").
	Name() string

	// ActivePaneID returns the id of the active pane (e.g., "%3").
	ActivePaneID(ctx context.Context) (string, error)

	// HistoryLimit returns the configured scrollback limit. Never fails:
	// errors and non-numeric output yield the fallback limit.
	HistoryLimit(ctx context.Context) int

	// ListPaneIDs returns pane ids in the multiplexer's listing order.
	ListPaneIDs(ctx context.Context) ([]string, error)

	// CapturePane captures the last lines of a pane. An empty paneID
	// targets the caller's own pane.
	CapturePane(ctx context.Context, lines int, paneID string) (string, error)
}
