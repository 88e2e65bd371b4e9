package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so the first one is outermost. Nil entries are skipped,
// which lets callers pass optional middleware such as a disabled limiter.
func Chain(mws ...Middleware) Middleware {
	active := make([]Middleware, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			active = append(active, mw)
		}
	}
	return func(h http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			h = active[i](h)
		}
		return h
	}
}

// ThenFunc applies m to fn. A nil m returns fn unchanged.
func (m Middleware) ThenFunc(fn http.HandlerFunc) http.Handler {
	if m == nil {
		return fn
	}
	return m(fn)
}
