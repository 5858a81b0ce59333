package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("matchup-predictor/internal/usecase")

// startUsecaseSpan opens a child span only when the caller is already
// traced, so background work does not create root spans.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
}

// recordSpanError marks the span failed. Caller mistakes are not failures.
func recordSpanError(span trace.Span, err error) {
	if err == nil || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
