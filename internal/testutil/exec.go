// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"fmt"
	"strings"
)

type response struct {
	out []byte
	err error
}

// FakeCommander answers commands from canned responses keyed by the command
// line ("name arg1 arg2"). An exact key wins; otherwise the longest key that
// prefixes the command line is used.
type FakeCommander struct {
	responses map[string]response

	// Calls records every executed command line, in order.
	Calls []string
}

func NewFakeCommander() *FakeCommander {
	return &FakeCommander{responses: make(map[string]response)}
}

// Register sets the output and error returned for key.
func (c *FakeCommander) Register(key, output string, err error) {
	c.responses[key] = response{out: []byte(output), err: err}
}

func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	c.Calls = append(c.Calls, line)

	if r, ok := c.lookup(line); ok {
		return r.out, r.err
	}
	return nil, fmt.Errorf("fake: no response registered for %q", line)
}

func (c *FakeCommander) lookup(line string) (response, bool) {
	if r, ok := c.responses[line]; ok {
		return r, true
	}
	best := ""
	for key := range c.responses {
		if strings.HasPrefix(line, key) && len(key) > len(best) {
			best = key
		}
	}
	r, ok := c.responses[best]
	return r, ok && best != ""
}

// Called reports whether any executed command line starts with prefix.
func (c *FakeCommander) Called(prefix string) bool {
	return c.CallCount(prefix) > 0
}

// CallCount counts executed command lines starting with prefix.
func (c *FakeCommander) CallCount(prefix string) int {
	n := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}

// Env returns a getenv-style lookup backed by vars.
func Env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}
