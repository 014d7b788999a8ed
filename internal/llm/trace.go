package llm

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("tmux-fragments/llm")

// startSpan opens a GenAI client span ("chat {model}") and records the
// input messages.
func startSpan(ctx context.Context, provider, model string, maxTokens int64, system, user string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, "chat "+model,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gen_ai.operation.name", "chat"),
			attribute.String("gen_ai.provider.name", provider),
			attribute.String("gen_ai.request.model", model),
			attribute.Int64("gen_ai.request.max_tokens", maxTokens),
		),
	)

	input := []map[string]string{
		{"role": "system", "content": system},
		{"role": "user", "content": user},
	}
	if b, err := json.Marshal(input); err == nil {
		span.SetAttributes(attribute.String("gen_ai.input.messages", string(b)))
	}
	return ctx, span
}

// endSpan records the response attributes.
func endSpan(span trace.Span, model string, c *Completion) {
	span.SetAttributes(
		attribute.String("gen_ai.response.model", model),
		attribute.Int64("gen_ai.usage.input_tokens", c.Usage.InputTokens),
		attribute.Int64("gen_ai.usage.output_tokens", c.Usage.OutputTokens),
	)
	if c.FinishReason != "" {
		span.SetAttributes(attribute.StringSlice("gen_ai.response.finish_reasons", []string{c.FinishReason}))
	}
	output := []map[string]string{{"role": "assistant", "content": c.Text}}
	if b, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("gen_ai.output.messages", string(b)))
	}
}
