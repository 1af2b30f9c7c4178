// Package otel configures OpenTelemetry tracing for uikit commands.
package otel

import (
	"context"
	"strings"

	"github.com/louisbranch/uikit/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Settings are the tracing knobs read from the environment.
type Settings struct {
	Endpoint    string  `env:"UIKIT_OTEL_ENDPOINT"`
	Enabled     string  `env:"UIKIT_OTEL_ENABLED"`
	SampleRatio float64 `env:"UIKIT_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether settings call for an exporting provider.
func (s Settings) Active() bool {
	return !strings.EqualFold(strings.TrimSpace(s.Enabled), "false") && strings.TrimSpace(s.Endpoint) != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	if s.SampleRatio >= 1 {
		return sdktrace.AlwaysSample()
	}
	if s.SampleRatio <= 0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when UIKIT_OTEL_ENDPOINT is empty or
// UIKIT_OTEL_ENABLED is "false", Setup returns a no-op shutdown function
// and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return noop, err
	}
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.sampler()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
