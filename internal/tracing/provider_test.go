package tracing

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/config"
)

func enabled(exporter string) config.TracingConfig {
	return config.TracingConfig{Enabled: true, Exporter: exporter, SampleRate: 1.0}
}

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(config.TracingConfig{Enabled: false, Exporter: "bogus"})
	require.NoError(t, err)
	require.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "noop")
	require.False(t, span.SpanContext().IsValid(), "no-op spans carry no IDs")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_FileExporter(t *testing.T) {
	cfg := enabled(config.ExporterFile)
	cfg.FilePath = filepath.Join(t.TempDir(), "traces", "traces.jsonl")

	p, err := NewProvider(cfg, WithoutGlobal())
	require.NoError(t, err)
	require.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "registration.register")
	require.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"name":"registration.register"`)
}

func TestNewProvider_StdoutExporterWaitsForShutdown(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewProvider(enabled(config.ExporterStdout), WithStdout(&buf), WithoutGlobal())
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "held-span")
	span.End()
	require.NoError(t, p.provider.ForceFlush(context.Background()))
	require.Zero(t, buf.Len(), "nothing is printed while the UI owns the terminal")

	require.NoError(t, p.Shutdown(context.Background()))
	require.Contains(t, buf.String(), "held-span")
}

func TestNewProvider_NoExporter(t *testing.T) {
	p, err := NewProvider(enabled(config.ExporterNone), WithoutGlobal())
	require.NoError(t, err)

	ctx, parent := p.Tracer().Start(context.Background(), "parent")
	_, child := p.Tracer().Start(ctx, "child")
	require.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())
	child.End()
	parent.End()

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	p, err := NewProvider(enabled("zipkin"), WithoutGlobal())
	require.Error(t, err)
	require.Nil(t, p)
	require.Contains(t, err.Error(), "unsupported exporter")
}

func TestNewProvider_ZeroSampleRateSamplesAll(t *testing.T) {
	cfg := enabled(config.ExporterNone)
	cfg.SampleRate = 0

	p, err := NewProvider(cfg, WithoutGlobal())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	_, span := p.Tracer().Start(context.Background(), "sampled")
	require.True(t, span.SpanContext().IsSampled())
	span.End()
}
