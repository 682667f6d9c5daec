package server

import "context"

// HealthChecker reports whether a backend can serve requests right now.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type HealthCheckFunc func(ctx context.Context) bool

func (f HealthCheckFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

// Static reports a fixed state, for backends with nothing to ping.
func Static(healthy bool) HealthChecker {
	return HealthCheckFunc(func(context.Context) bool { return healthy })
}
