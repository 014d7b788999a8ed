package mux

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/timvw/tmux-fragments/internal/testutil"
)

func TestTmux_ActivePaneID(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("tmux display-message -p #{pane_id}", "%7\n", nil)
	tm := NewTmux(WithCommander(fake))

	got, err := tm.ActivePaneID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "%7" {
		t.Errorf("ActivePaneID: got %q, want %q", got, "%7")
	}
}

func TestTmux_ActivePaneIDError(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("tmux display-message -p #{pane_id}", "", errors.New("no server running"))
	tm := NewTmux(WithCommander(fake))

	if _, err := tm.ActivePaneID(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestTmux_HistoryLimit(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		err      error
		fallback int
		want     int
	}{
		{name: "numeric", output: "50000\n", want: 50000},
		{name: "zero", output: "0", want: 0},
		{name: "non numeric", output: "unlimited", want: DefaultHistoryLimit},
		{name: "negative", output: "-5", want: DefaultHistoryLimit},
		{name: "empty", output: "", want: DefaultHistoryLimit},
		{name: "command error", err: errors.New("exit status 1"), want: DefaultHistoryLimit},
		{name: "custom fallback", output: "n/a", fallback: 10000, want: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeCommander()
			fake.Register("tmux display-message -p #{history-limit}", tt.output, tt.err)
			tm := NewTmux(WithCommander(fake), WithDefaultHistoryLimit(tt.fallback))

			if got := tm.HistoryLimit(context.Background()); got != tt.want {
				t.Errorf("HistoryLimit: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTmux_ListPaneIDs(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("tmux list-panes -F #{pane_id}", "%2\n\n%0\n%5\n", nil)
	tm := NewTmux(WithCommander(fake))

	got, err := tm.ListPaneIDs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"%2", "%0", "%5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListPaneIDs: got %v, want %v", got, want)
	}
}

func TestTmux_CapturePaneArgs(t *testing.T) {
	tests := []struct {
		name   string
		lines  int
		paneID string
		want   string
	}{
		{name: "own pane", lines: 100, want: "tmux capture-pane -p -S -100"},
		{name: "explicit pane", lines: 20, paneID: "%4", want: "tmux capture-pane -p -S -20 -t %4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeCommander()
			fake.Register("tmux capture-pane", "  $ ls\nfoo bar\n\n", nil)
			tm := NewTmux(WithCommander(fake))

			got, err := tm.CapturePane(context.Background(), tt.lines, tt.paneID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != "$ ls\nfoo bar" {
				t.Errorf("CapturePane: got %q", got)
			}
			if len(fake.Calls) != 1 || fake.Calls[0] != tt.want {
				t.Errorf("calls: got %v, want [%s]", fake.Calls, tt.want)
			}
		})
	}
}

func TestTmux_CustomBinary(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("/opt/bin/tmux display-message -p #{pane_id}", "%1", nil)
	tm := NewTmux(WithCommander(fake), WithBinary("/opt/bin/tmux"))

	if _, err := tm.ActivePaneID(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInSession(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		probeErr error
		want     bool
	}{
		{name: "env marker", env: map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"}, probeErr: errors.New("unreachable"), want: true},
		{name: "probe succeeds", want: true},
		{name: "probe fails", probeErr: errors.New("no server running"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := testutil.NewFakeCommander()
			fake.Register("tmux display-message -p #{pane_id}", "%0", tt.probeErr)
			tm := NewTmux(WithCommander(fake))

			if got := InSession(context.Background(), tm, testutil.Env(tt.env)); got != tt.want {
				t.Errorf("InSession: got %v, want %v", got, tt.want)
			}
			if tt.env["TMUX"] != "" && fake.Called("tmux") {
				t.Error("env marker present, probe should be skipped")
			}
		})
	}
}

func TestFromName(t *testing.T) {
	if m, err := FromName("tmux"); err != nil || m.Name() != "tmux" {
		t.Errorf("FromName(tmux): got %v, %v", m, err)
	}
	if _, err := FromName("screen"); err == nil {
		t.Error("expected unknown multiplexer error")
	}
}
