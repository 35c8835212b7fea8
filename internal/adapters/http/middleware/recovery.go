package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
)

// errPanic is what the client sees in place of the panic value.
var errPanic = errors.New("internal server error")

// Recovery turns a panic in a view API handler into a 500 problem response.
// The log entry carries the stack, the matched route and, for the per-todo
// routes, the todo id. When the handler already sent headers only the log
// entry is written. It must run inside RequestID.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.ErrorContext(r.Context(), "panic recovered", panicAttrs(r, v)...)
				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// panicAttrs reads the route context after routing, so the pattern and the
// id parameter are filled in by the time a handler panics.
func panicAttrs(r *http.Request, v any) []any {
	attrs := []any{
		slog.String("panic", fmt.Sprint(v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("route", routePattern(r)),
		slog.String("request_id", RequestIDFromContext(r.Context())),
	}
	if id := chi.URLParam(r, "id"); id != "" {
		attrs = append(attrs, slog.String("todo_id", id))
	}
	return append(attrs, slog.String("stack", string(debug.Stack())))
}
