package model

import (
	"errors"
	"fmt"
)

// Fragment is a labeled block of terminal context handed to the host.
type Fragment struct {
	// Source is the provenance label (e.g., "tmux:current:3000", "tmux:%1:50", "tmux:sys").
	Source string `json:"source" yaml:"source"`
	// Content is the wrapped text body.
	Content string `json:"content" yaml:"content"`
}

// Template is a named system prompt.
type Template struct {
	// Name is the fully qualified template name (e.g., "shassist:default").
	Name string `json:"name" yaml:"name"`
	// System is the system prompt body.
	System string `json:"system" yaml:"system"`
}

// Error kinds. Match with errors.Is against an *Error.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotInSession     = errors.New("not in a tmux session")
	ErrTemplateNotFound = errors.New("template not found")
	ErrQuery            = errors.New("tmux query failed")
)

// Error is the single user-facing error returned by the loaders.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Message is the text shown to the user.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is matches the error kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a user-facing error of the given kind.
func NewError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates a user-facing error of the given kind around cause.
func WrapError(kind error, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// TokenUsage tracks LLM token consumption for a single completion.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}
