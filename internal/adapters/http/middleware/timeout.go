package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/todosync/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds how long a handler may take. The
// handler runs on its own goroutine against a buffered writer and a context
// carrying the deadline. If it finishes in time its buffered response is
// sent; otherwise the buffer is discarded, later writes fail with
// http.ErrHandlerTimeout and the client receives a 504 problem response.
//
// A panic in the handler is re-raised on the serving goroutine so Recovery
// still sees it. A zero or negative timeout disables the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flushTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				writeTimeout(w, r, timeout)
			}
		})
	}
}

// timeoutWriter buffers a handler's response until Timeout decides whether
// to send it. The mutex is shared between the handler goroutine and the
// select in Timeout.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	buf      []byte
	status   int
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.status != 0 {
		return
	}
	tw.status = code
}

// flushTo copies the buffered response to w. Must be called with tw.mu held.
func (tw *timeoutWriter) flushTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.status != 0 {
		w.WriteHeader(tw.status)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request, timeout time.Duration) {
	dto.WriteProblem(w, r, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusGatewayTimeout),
		Status:   http.StatusGatewayTimeout,
		Detail:   fmt.Sprintf("request did not complete within %s", timeout),
		Instance: r.RequestURI,
	})
}
