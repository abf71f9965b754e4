package observability

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceIDHeader exposes the server span's trace id to clients.
const TraceIDHeader = "X-Trace-Id"

var tracer = otel.Tracer("github.com/Lenon69/MegJoniShop/internal/observability")

// TraceMiddleware starts a server span per request and stores its identity on
// the request context. Without a configured provider the span is a no-op.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), spanNameFromRequest(r), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		span.SetAttributes(standardSpanAttributes(r)...)

		sc := span.SpanContext()
		info := TraceInfo{Sampled: sc.IsSampled()}
		if sc.IsValid() {
			info.TraceID = sc.TraceID().String()
			info.SpanID = sc.SpanID().String()
			w.Header().Set(TraceIDHeader, info.TraceID)
		}
		ctx = WithTrace(ctx, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func spanNameFromRequest(r *http.Request) string {
	path := r.URL.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s %s", r.Method, logPath(path))
}

func standardSpanAttributes(r *http.Request) []attribute.KeyValue {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", r.Method),
		attribute.String("url.scheme", scheme),
		attribute.String("url.path", r.URL.Path),
	}
	if host := r.Host; host != "" {
		attrs = append(attrs, attribute.String("server.address", host))
	}
	if ua := r.UserAgent(); ua != "" {
		attrs = append(attrs, attribute.String("user_agent.original", ua))
	}
	return attrs
}
