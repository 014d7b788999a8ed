// Package fragment implements the tmux fragment loader: it parses the
// argument grammar, queries the multiplexer and wraps pane text as tagged
// context blocks.
package fragment

import (
	"context"
	"fmt"
	"os"

	"github.com/timvw/tmux-fragments/internal/cmdexec"
	"github.com/timvw/tmux-fragments/internal/model"
	"github.com/timvw/tmux-fragments/internal/mux"
	telemetry "github.com/timvw/tmux-fragments/internal/otel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Prefix is the fragment loader prefix registered with the host.
const Prefix = "tmux"

// NotInSessionMessage is reported whenever no tmux session is reachable.
const NotInSessionMessage = "Not in a tmux session (no $TMUX and tmux not reachable). " +
	"Open in tmux, or install tmux. Tip: increase history with " +
	"`set -g history-limit 50000` in ~/.tmux.conf."

var tracer = otel.Tracer("tmux-fragments/fragment")

// Builder turns fragment arguments into fragments. It holds no per-call
// state and is safe to reuse.
type Builder struct {
	mux     mux.Multiplexer
	exec    cmdexec.Commander
	getenv  func(string) string
	shell   string
	logger  *zap.Logger
	metrics *telemetry.Metrics
}

// Option configures a Builder.
type Option func(*Builder)

// WithCommander sets the command runner used for uname and alias lookups.
func WithCommander(c cmdexec.Commander) Option {
	return func(b *Builder) {
		if c != nil {
			b.exec = c
		}
	}
}

// WithGetenv overrides environment lookups (TMUX, SHELL).
func WithGetenv(getenv func(string) string) Option {
	return func(b *Builder) {
		if getenv != nil {
			b.getenv = getenv
		}
	}
}

// WithShell forces the shell used for sys fragments instead of $SHELL.
func WithShell(path string) Option {
	return func(b *Builder) {
		b.shell = path
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMetrics sets the metric instruments. Nil disables recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(b *Builder) {
		b.metrics = m
	}
}

// NewBuilder creates a Builder over the given multiplexer.
func NewBuilder(m mux.Multiplexer, opts ...Option) *Builder {
	b := &Builder{
		mux:    m,
		exec:   &cmdexec.RealCommander{},
		getenv: os.Getenv,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load is the fragment loader entry point. Single-pane and sys arguments
// yield one fragment; "all" yields one fragment per pane.
//
// The session check runs before the argument is parsed, so outside tmux
// every argument fails with ErrNotInSession.
func (b *Builder) Load(ctx context.Context, argument string) ([]model.Fragment, error) {
	ctx, span := tracer.Start(ctx, "fragment.load")
	defer span.End()
	span.SetAttributes(attribute.String("fragment.argument", argument))

	frags, mode, err := b.load(ctx, argument)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.metrics.RecordLoad(ctx, Prefix, mode, "error")
		b.logger.Debug("fragment load failed", zap.String("argument", argument), zap.Error(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("fragment.mode", mode),
		attribute.Int("fragment.count", len(frags)),
	)
	b.metrics.RecordLoad(ctx, Prefix, mode, "ok")
	b.metrics.RecordFragments(ctx, mode, len(frags))
	return frags, nil
}

func (b *Builder) load(ctx context.Context, argument string) ([]model.Fragment, string, error) {
	if !mux.InSession(ctx, b.mux, b.getenv) {
		return nil, "unknown", model.NewError(model.ErrNotInSession, "%s", NotInSessionMessage)
	}

	req, err := ParseRequest(argument)
	if err != nil {
		return nil, "invalid", err
	}
	mode := req.Mode.String()

	if req.Mode == ModeSys {
		return []model.Fragment{b.sysFragment(ctx)}, mode, nil
	}

	n := req.Lines
	if n == 0 {
		n = b.mux.HistoryLimit(ctx)
	}

	if req.Mode == ModeAll {
		frags, err := b.allPanes(ctx, n)
		return frags, mode, err
	}
	frag, err := b.onePane(ctx, req, n)
	if err != nil {
		return nil, mode, err
	}
	return []model.Fragment{frag}, mode, nil
}

func (b *Builder) onePane(ctx context.Context, req Request, n int) (model.Fragment, error) {
	active, err := b.mux.ActivePaneID(ctx)
	if err != nil {
		return model.Fragment{}, model.WrapError(model.ErrQuery, err, "could not determine active pane")
	}

	paneID, target, label := req.PaneID, req.PaneID, req.PaneID
	if req.Mode == ModeCurrent {
		// The caller's own pane: no -t so tmux resolves it from the client.
		paneID, target, label = active, "", "current"
	}

	text, err := b.mux.CapturePane(ctx, n, target)
	if err != nil {
		return model.Fragment{}, model.WrapError(model.ErrQuery, err, "could not capture pane %s", paneID)
	}

	return model.Fragment{
		Source:  fmt.Sprintf("%s:%s:%d", Prefix, label, n),
		Content: WrapPane(paneID, text, paneID == active),
	}, nil
}

func (b *Builder) allPanes(ctx context.Context, n int) ([]model.Fragment, error) {
	active, err := b.mux.ActivePaneID(ctx)
	if err != nil {
		return nil, model.WrapError(model.ErrQuery, err, "could not determine active pane")
	}
	ids, err := b.mux.ListPaneIDs(ctx)
	if err != nil {
		return nil, model.WrapError(model.ErrQuery, err, "could not list panes")
	}

	frags := make([]model.Fragment, 0, len(ids))
	for _, id := range ids {
		text, err := b.mux.CapturePane(ctx, n, id)
		if err != nil {
			return nil, model.WrapError(model.ErrQuery, err, "could not capture pane %s", id)
		}
		frags = append(frags, model.Fragment{
			Source:  fmt.Sprintf("%s:%s:%d", Prefix, id, n),
			Content: WrapPane(id, text, id == active),
		})
	}
	return frags, nil
}

// WrapPane tags pane text with its id and whether it is the active pane.
func WrapPane(paneID, text string, active bool) string {
	return fmt.Sprintf("<pane id=\"%s\" active=\"%t\">\n%s\n</pane>", paneID, active, text)
}
