package fragment

import (
	"strconv"
	"strings"

	"github.com/timvw/tmux-fragments/internal/model"
)

// Mode selects what a tmux fragment captures.
type Mode int

const (
	// ModeCurrent captures the active pane.
	ModeCurrent Mode = iota
	// ModePane captures a specific pane id.
	ModePane
	// ModeAll captures every pane, one fragment each.
	ModeAll
	// ModeSys gathers kernel, shell and alias information.
	ModeSys
)

func (m Mode) String() string {
	switch m {
	case ModeCurrent:
		return "current"
	case ModePane:
		return "pane"
	case ModeAll:
		return "all"
	case ModeSys:
		return "sys"
	default:
		return "unknown"
	}
}

// Usage lists the accepted argument grammar.
const Usage = "current[:N], %<pane_id>[:N], all[:N], sys"

// Request is a parsed fragment argument.
type Request struct {
	Mode Mode
	// PaneID is set for ModePane only.
	PaneID string
	// Lines is the capture bound. Zero means "use the history limit".
	Lines int
}

// ParseRequest parses a fragment argument:
//
//	current[:N]      active pane, last N lines
//	%<pane_id>[:N]   specific pane, e.g. "%1:1000"
//	all[:N]          every pane, one fragment per pane
//	sys              uname -a, $SHELL, aliases
//
// Matching is case-insensitive and an empty argument means "current".
func ParseRequest(argument string) (Request, error) {
	arg := strings.ToLower(strings.TrimSpace(argument))
	if arg == "" {
		arg = "current"
	}
	if arg == "sys" {
		return Request{Mode: ModeSys}, nil
	}

	head, tail, hasTail := strings.Cut(arg, ":")
	var lines int
	if hasTail && tail != "" {
		n, err := strconv.Atoi(strings.TrimSpace(tail))
		if err != nil {
			return Request{}, model.NewError(model.ErrInvalidArgument,
				"Invalid line count in tmux fragment: %q", tail)
		}
		if n < 0 {
			return Request{}, model.NewError(model.ErrInvalidArgument,
				"Invalid line count in tmux fragment: %q (must be non-negative)", tail)
		}
		lines = n
	}

	switch {
	case head == "current":
		return Request{Mode: ModeCurrent, Lines: lines}, nil
	case head == "all":
		return Request{Mode: ModeAll, Lines: lines}, nil
	case strings.HasPrefix(head, "%"):
		return Request{Mode: ModePane, PaneID: head, Lines: lines}, nil
	}
	return Request{}, model.NewError(model.ErrInvalidArgument,
		"Unsupported tmux fragment arg %q. Use one of: %s", argument, Usage)
}
