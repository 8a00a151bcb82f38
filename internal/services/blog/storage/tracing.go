package storage

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/manishyadav/portfolio/internal/services/blog/storage"

// StartSpan opens a span for one store operation. The returned finish func
// records err on the span (ErrNotFound is not treated as a failure) and ends it.
func StartSpan(ctx context.Context, backend string, operation string) (context.Context, func(error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, backend+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", backend),
			attribute.String("db.collection.name", "blog_post"),
			attribute.String("db.operation.name", operation),
		),
	)
	return ctx, func(err error) {
		if err != nil && !errors.Is(err, ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
