package cmd

import (
	"errors"

	"github.com/timvw/tmux-fragments/internal/model"
)

// ExitCode is the process exit status.
type ExitCode int

const (
	ExitSuccess          ExitCode = 0
	ExitGeneral          ExitCode = 1
	ExitInvalidArgument  ExitCode = 2
	ExitNotInSession     ExitCode = 3
	ExitTemplateNotFound ExitCode = 4
)

// MapExitCode maps a loader error kind to an exit code.
func MapExitCode(err error) ExitCode {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, model.ErrInvalidArgument):
		return ExitInvalidArgument
	case errors.Is(err, model.ErrNotInSession):
		return ExitNotInSession
	case errors.Is(err, model.ErrTemplateNotFound):
		return ExitTemplateNotFound
	default:
		return ExitGeneral
	}
}
