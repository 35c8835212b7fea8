// Package acl implements the Anti-Corruption Layer that translates between
// the remote todo resource's representations and domain types. Resource
// translators live in subpackages (acl/todo, acl/category); shared request
// handling and error mapping live here.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// problemDetail is the subset of an RFC 7807 body the resource may send.
type problemDetail struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps a non-2xx response to a domain error. Every result
// wraps domain.ErrRejected, plus the finer sentinel the status names, if any.
// An application/problem+json body supplies the message; for 400 and 422
// its field errors become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)
	msg := fmt.Sprintf("%s (HTTP %d)",
		cmp.Or(pd.Detail, http.StatusText(resp.StatusCode), "unexpected response"),
		resp.StatusCode)

	invalid := resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity
	if invalid && len(pd.Errors) > 0 {
		fields := make(map[string]string, len(pd.Errors))
		for _, e := range pd.Errors {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return fmt.Errorf("%w: %w", domain.ErrRejected, &domain.ValidationError{Fields: fields})
	}

	if sentinel := statusSentinel(resp.StatusCode); sentinel != nil {
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrRejected, sentinel)
	}
	return fmt.Errorf("%s: %w", msg, domain.ErrRejected)
}

func statusSentinel(code int) error {
	switch {
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case code == http.StatusConflict:
		return domain.ErrConflict
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return domain.ErrForbidden
	case code >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// readProblem decodes a problem+json body. Any other body, or one that fails
// to decode, yields the zero value.
func readProblem(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return pd
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&pd); err != nil {
		return problemDetail{}
	}
	return pd
}
