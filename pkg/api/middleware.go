package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/hazyhaar/normy/pkg/kit"
)

// withLogging logs each endpoint invocation's duration and outcome, the way
// a transport-agnostic audit middleware is meant to: it never inspects the
// concrete request/response types, only whether the call errored.
func withLogging(logger *slog.Logger) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			logger.Debug("endpoint call",
				"request_id", kit.GetRequestID(ctx),
				"transport", kit.GetTransport(ctx),
				"duration", time.Since(start),
				"error", err,
			)
			return resp, err
		}
	}
}

// wrap applies the standard middleware chain to an Endpoint.
func wrap(logger *slog.Logger, ep kit.Endpoint) kit.Endpoint {
	return kit.Chain(withLogging(logger))(ep)
}
