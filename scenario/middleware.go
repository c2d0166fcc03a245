package scenario

// Middleware allows us to write something like decorators to Scenario.
// It can execute something before Play or after.
type Middleware interface {
	// Decorate wraps the underlying Scenario, adding some functionality.
	Decorate(s Scenario) Scenario
}

// The MiddlewareFunc type is an adapter to allow the use of ordinary functions as Middleware.
// If f is a function with the appropriate signature, MiddlewareFunc(f) is a Middleware that calls f.
type MiddlewareFunc func(s Scenario) Scenario

// Decorate call f(s).
func (f MiddlewareFunc) Decorate(s Scenario) Scenario {
	return f(s)
}

// Chain decorates the given Scenario with all middlewares.
func Chain(s Scenario, middlewares ...Middleware) Scenario {
	for i := len(middlewares) - 1; i >= 0; i-- {
		s = middlewares[i].Decorate(s)
	}
	return s
}
