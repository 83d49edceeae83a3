package kit

import "context"

// Endpoint is a transport-agnostic action function.
// Each normalization operation (normalize, normalize-batch, list-profiles)
// is an Endpoint; pkg/api's HTTP handlers dispatch to these rather than
// calling pkg/profile directly, so a future transport gains the same
// logging/timing middleware stack for free.
type Endpoint func(ctx context.Context, request any) (response any, err error)

// Middleware wraps an Endpoint with cross-cutting concerns (logging, timing).
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares so the first is outermost.
// Chain(a, b, c)(endpoint) == a(b(c(endpoint)))
func Chain(outer Middleware, others ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(others) - 1; i >= 0; i-- {
			next = others[i](next)
		}
		return outer(next)
	}
}
