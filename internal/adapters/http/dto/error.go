package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one rejected input and why.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// sentinelStatus is checked in order; the first match decides the status.
// Remote failures come first so a 404 from the todo resource surfaces as a
// 502 rather than a local 404.
var sentinelStatus = []struct {
	match  func(error) bool
	status int
}{
	{domain.IsRemoteFailure, http.StatusBadGateway},
	{is(domain.ErrValidation), http.StatusBadRequest},
	{is(domain.ErrNotFound), http.StatusNotFound},
	{is(domain.ErrForbidden), http.StatusForbidden},
	{is(domain.ErrConflict), http.StatusConflict},
	{is(domain.ErrUnavailable), http.StatusBadGateway},
	{is(domain.ErrClosed), http.StatusServiceUnavailable},
}

func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

func statusFor(err error) int {
	for _, s := range sentinelStatus {
		if s.match(err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err, with r's URI as the
// instance. A *domain.ValidationError contributes one ErrorDetail per field,
// sorted by location.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
			resp.Errors = append(resp.Errors, ErrorDetail{
				Location: "body." + field,
				Message:  verr.Fields[field],
			})
		}
	}
	return resp
}

// WriteErrorResponse maps err to a problem document and writes it.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes resp as application/problem+json with resp.Status.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", err))
	}
}
