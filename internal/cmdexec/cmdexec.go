// Package cmdexec abstracts external command execution so tmux and shell
// queries can be faked in tests.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Commander runs an external command and returns its stdout.
type Commander interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealCommander executes commands via os/exec.
type RealCommander struct{}

// Run executes the command and returns stdout. On a non-zero exit the
// command's stderr is folded into the returned error.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
				return out, fmt.Errorf("%w: %s", err, stderr)
			}
		}
		return out, err
	}
	return out, nil
}
