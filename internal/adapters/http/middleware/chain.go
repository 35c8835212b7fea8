package middleware

import (
	"net/http"
	"slices"
)

// Chain folds the view API middleware into one, listed outermost first:
// Chain(RequestID(), Recovery(l))(h) serves h inside Recovery inside
// RequestID.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			handler = mw(handler)
		}
		return handler
	}
}
