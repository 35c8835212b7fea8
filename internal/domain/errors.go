package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
//
// ErrNetwork and ErrRejected split outbound failures into transport-level
// failures and non-2xx responses. The finer sentinels (ErrNotFound,
// ErrValidation, ...) are wrapped alongside ErrRejected when the status code
// identifies them. ErrClosed marks work refused during shutdown.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrNetwork     = errors.New("network failure")
	ErrRejected    = errors.New("rejected by server")
	ErrClosed      = errors.New("closed")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsRemoteFailure reports whether err came from the remote resource, either
// as a transport failure or as a rejection. Both are surfaced to callers the
// same way.
func IsRemoteFailure(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrRejected)
}
