package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
)

// maxResponseBodySize caps how much of a 2xx body is read.
const maxResponseBodySize = 8 << 20

// errEmptyBody means a 2xx reply carried no body although one was decoded
// for. Create and patch calls treat it as confirmation without an echo.
var errEmptyBody = errors.New("empty response body")

// Requester performs one JSON round trip against the todo resource.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client. A nil logger discards output.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends method to path with in encoded as JSON when non-nil, and decodes a
// 2xx body into out when out is non-nil. Non-2xx replies go through
// TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, in, out any) error {
	req, err := r.build(ctx, method, path, in)
	if err != nil {
		return err
	}
	op := method + " " + path

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				r.logger.WarnContext(ctx, "closing response body", slog.String("op", op), slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp == nil:
		r.logger.ErrorContext(ctx, "todo resource unreachable", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, err)
	case err != nil || resp.StatusCode/100 != 2:
		// A non-nil err with a response means retries ran out on a
		// retryable status; the status says more than the retry error.
		r.logger.ErrorContext(ctx, "todo resource refused request",
			slog.String("op", op), slog.Int("status", resp.StatusCode))
		return TranslateHTTPError(resp)
	}

	body := io.LimitReader(resp.Body, maxResponseBodySize)
	if out == nil {
		_, _ = io.Copy(io.Discard, body)
		return nil
	}
	return decode(op, body, out)
}

func (r *Requester) build(ctx context.Context, method, path string, in any) (*http.Request, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decode reads the whole body so an empty reply can be told apart from a
// malformed one.
func decode(op string, body io.Reader, out any) error {
	raw, err := io.ReadAll(body)
	switch {
	case err != nil:
		return fmt.Errorf("reading %s: %w: %w", op, domain.ErrNetwork, err)
	case len(bytes.TrimSpace(raw)) == 0:
		return fmt.Errorf("%s: %w", op, errEmptyBody)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s: %w: %w", op, domain.ErrRejected, err)
	}
	return nil
}
