// Package tracing sets up the OpenTelemetry tracer provider used for
// registration spans.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/log"
)

// ServiceName identifies signup in exported traces.
const ServiceName = "signup"

// Provider wraps the SDK tracer provider. A disabled Provider hands out a
// no-op tracer and has nothing to flush.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	enabled  bool
}

type options struct {
	stdout io.Writer
	global bool
}

// Option customizes NewProvider.
type Option func(*options)

// WithStdout redirects the "stdout" exporter to w.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithoutGlobal keeps the provider out of otel's global registry.
func WithoutGlobal() Option {
	return func(o *options) { o.global = false }
}

// NewProvider creates and configures the trace provider from the tracing
// config section.
func NewProvider(cfg config.TracingConfig, opts ...Option) (*Provider, error) {
	o := options{stdout: os.Stdout, global: true}
	for _, opt := range opts {
		opt(&o)
	}

	if !cfg.Enabled {
		return &Provider{
			tracer: noop.NewTracerProvider().Tracer(ServiceName),
		}, nil
	}

	exporter, err := newExporter(cfg, o)
	if err != nil {
		return nil, err
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	tpOpts := []sdktrace.TracerProviderOption{
		// Schemaless avoids schema version conflicts with resource.Default()
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
		)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
	}
	if exporter != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(tpOpts...)
	if o.global {
		otel.SetTracerProvider(provider)
	}

	log.Info(log.CatTrace, "Tracing enabled", "exporter", cfg.Exporter, "sample_rate", sampleRate)

	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(ServiceName),
		enabled:  true,
	}, nil
}

func newExporter(cfg config.TracingConfig, o options) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case config.ExporterFile:
		path := cfg.FilePath
		if path == "" {
			path = config.DefaultTraceFilePath()
		}
		exp, err := NewFileExporter(path)
		if err != nil {
			return nil, fmt.Errorf("create file exporter: %w", err)
		}
		return exp, nil
	case config.ExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(o.stdout), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		// The terminal belongs to the UI until it exits.
		return newDeferredExporter(exp), nil
	case config.ExporterOTLP:
		endpoint := cfg.OTLPEndpoint
		if endpoint == "" {
			endpoint = "localhost:4317"
		}
		exp, err := otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		return exp, nil
	case config.ExporterNone, "":
		// Spans still carry IDs for log correlation.
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported exporter type: %s", cfg.Exporter)
	}
}

// Tracer returns the tracer for registration spans. Safe to use when
// tracing is disabled.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// Shutdown flushes pending spans and stops the exporters.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
