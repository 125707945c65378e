package faceit

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var faceitTracer = otel.Tracer("faceit-go/external/faceit")
var faceitNoopSpan = trace.SpanFromContext(context.Background())

// startOperationSpan only opens a span under an existing trace so that plain
// library use does not produce orphan root spans.
func startOperationSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, faceitNoopSpan
	}
	return faceitTracer.Start(ctx, "faceit."+operation, trace.WithAttributes(
		attribute.String("faceit.operation", operation),
	))
}

func endOperationSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if apiErr, ok := AsAPIError(err); ok && apiErr.StatusCode > 0 {
			span.SetAttributes(attribute.Int("faceit.status_code", apiErr.StatusCode))
		}
	}
	span.End()
}
