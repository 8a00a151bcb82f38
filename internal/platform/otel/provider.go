// Package otel configures OpenTelemetry tracing for portfolio processes.
package otel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// EndpointEnv names the OTLP/HTTP collector URL. Empty disables tracing.
	EndpointEnv = "PORTFOLIO_OTEL_ENDPOINT"
	// EnabledEnv forces tracing off when set to "false".
	EnabledEnv = "PORTFOLIO_OTEL_ENABLED"
)

const serviceNamespace = "portfolio"

// Setup registers a batching OTLP/HTTP tracer provider for serviceName and
// returns its shutdown func, which flushes pending spans.
//
// Tracing is opt-in. Without an endpoint, or with EnabledEnv set to "false",
// nothing is registered and the returned shutdown is a no-op; store and
// request spans then go to the default no-op tracer.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	endpoint, ok := collectorEndpoint()
	if !ok {
		return noop, nil
	}
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceNamespace(serviceNamespace),
	))
	if err != nil {
		return noop, fmt.Errorf("build trace resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider.Shutdown, nil
}

// collectorEndpoint returns the configured collector URL and whether tracing
// is on.
func collectorEndpoint() (string, bool) {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(EnabledEnv)), "false") {
		return "", false
	}
	endpoint := strings.TrimSpace(os.Getenv(EndpointEnv))
	return endpoint, endpoint != ""
}
