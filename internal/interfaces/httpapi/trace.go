package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("matchup-predictor/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// untracedPaths are probes and static docs.
var untracedPaths = map[string]struct{}{
	"/healthz":      {},
	"/health":       {},
	"/livez":        {},
	"/readyz":       {},
	"/docs":         {},
	"/openapi.yaml": {},
}

// RequestTracing opens the server span for every request except probes and docs.
func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "matchup-predictor-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

func shouldTraceRequest(path string) bool {
	_, skip := untracedPaths[strings.ToLower(strings.TrimSpace(path))]
	return !skip
}

// startSpan only opens handler spans, and only under a request span, so
// untraced routes never produce orphan roots.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !strings.HasPrefix(name, handlerSpanPrefix) {
		return ctx, noopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}
