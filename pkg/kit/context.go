// Package kit holds the transport-agnostic plumbing pkg/api builds its HTTP
// handlers on: the Endpoint/Middleware shape and the two context values a
// normalize request actually carries end to end, request ID and transport
// name. There is only one transport today (HTTP); these stay
// transport-agnostic because a future batch-import CLI or gRPC front end
// would dispatch through the same Endpoints.
package kit

import "context"

type contextKey string

const (
	TransportKey contextKey = "kit_transport" // "http"
	RequestIDKey contextKey = "kit_request_id"
)

// WithTransport/GetTransport record which front end is serving a request,
// for the access log line withLogging emits per normalize call.
func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}
func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "http"
}

// WithRequestID/GetRequestID carry a per-request correlation ID.
// GetRequestID returns "" when none was set; pkg/api's handlers set none.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}
