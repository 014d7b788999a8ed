package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "tmux-fragments"

// Metrics holds all OTEL metric instruments for tmux-fragments.
// All counters are cumulative and safe for concurrent use.
type Metrics struct {
	// Loader invocations, partitioned by loader, mode and outcome.
	LoaderCalls metric.Int64Counter
	// Fragments returned to the host.
	Fragments metric.Int64Counter
	// Best-effort queries that failed and were replaced by a default.
	Fallbacks metric.Int64Counter

	// LLM token counters for the ask command (partitioned by provider + model).
	InputTokens  metric.Int64Counter
	OutputTokens metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.LoaderCalls, err = meter.Int64Counter("loader.calls",
		metric.WithDescription("Fragment and template loader invocations by loader, mode and outcome"))
	if err != nil {
		return nil, err
	}

	m.Fragments, err = meter.Int64Counter("loader.fragments",
		metric.WithDescription("Fragments returned to the host"),
		metric.WithUnit("{fragment}"))
	if err != nil {
		return nil, err
	}

	m.Fallbacks, err = meter.Int64Counter("loader.fallbacks",
		metric.WithDescription("Best-effort queries replaced by a default value (uname, aliases)"))
	if err != nil {
		return nil, err
	}

	m.InputTokens, err = meter.Int64Counter("llm.tokens.input",
		metric.WithDescription("Total LLM input tokens consumed"),
		metric.WithUnit("{token}"))
	if err != nil {
		return nil, err
	}

	m.OutputTokens, err = meter.Int64Counter("llm.tokens.output",
		metric.WithDescription("Total LLM output tokens consumed"),
		metric.WithUnit("{token}"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordLoad records a loader invocation.
func (m *Metrics) RecordLoad(ctx context.Context, loader, mode, outcome string) {
	if m == nil {
		return
	}
	m.LoaderCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("loader.name", loader),
		attribute.String("loader.mode", mode),
		attribute.String("loader.outcome", outcome),
	))
}

// RecordFragments records the number of fragments produced by one call.
func (m *Metrics) RecordFragments(ctx context.Context, mode string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Fragments.Add(ctx, int64(n), metric.WithAttributes(
		attribute.String("loader.mode", mode),
	))
}

// RecordFallback records a swallowed best-effort failure.
func (m *Metrics) RecordFallback(ctx context.Context, query string) {
	if m == nil {
		return
	}
	m.Fallbacks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("query", query),
	))
}

// RecordTokens records LLM token usage.
func (m *Metrics) RecordTokens(ctx context.Context, provider, model string, input, output int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", model),
	)
	m.InputTokens.Add(ctx, input, attrs)
	m.OutputTokens.Add(ctx, output, attrs)
}
