package otel

import (
	"context"
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{name: "empty", raw: "", want: map[string]string{}},
		{name: "single", raw: "Authorization=Basic abc", want: map[string]string{"Authorization": "Basic abc"}},
		{name: "multiple with spaces", raw: " a=1 , b = 2 ", want: map[string]string{"a": "1", "b": "2"}},
		{name: "value with equals", raw: "token=x=y", want: map[string]string{"token": "x=y"}},
		{name: "missing key skipped", raw: "=oops,k=v", want: map[string]string{"k": "v"}},
		{name: "no separator skipped", raw: "garbage", want: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseHeaders(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseHeaders(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExporterOptions(t *testing.T) {
	traceOpts, metricOpts, err := exporterOptions(OTELConfig{
		Endpoint: "http://localhost:4318/otel/",
		Headers:  "k=v",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// endpoint + path + insecure + headers
	if len(traceOpts) != 4 {
		t.Errorf("trace options: got %d, want 4", len(traceOpts))
	}
	if len(metricOpts) != 4 {
		t.Errorf("metric options: got %d, want 4", len(metricOpts))
	}

	if _, _, err := exporterOptions(OTELConfig{Endpoint: "localhost"}); err == nil {
		t.Error("expected error for endpoint without host")
	}
}

func TestInitWithoutEndpoint(t *testing.T) {
	tel, err := Init(context.Background(), OTELConfig{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer tel.Shutdown(context.Background())

	if tel.Tracer == nil {
		t.Error("expected a no-op tracer")
	}
	if tel.Metrics == nil {
		t.Fatal("expected metrics")
	}
	// Must not panic without a MeterProvider.
	tel.Metrics.RecordLoad(context.Background(), "tmux", "current", "ok")
	tel.Metrics.RecordFragments(context.Background(), "all", 3)
	tel.Metrics.RecordFallback(context.Background(), "aliases")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordLoad(context.Background(), "tmux", "sys", "ok")
	m.RecordFragments(context.Background(), "sys", 1)
	m.RecordFallback(context.Background(), "uname")
	m.RecordTokens(context.Background(), "openai", "gpt-4o-mini", 1, 2)
}
