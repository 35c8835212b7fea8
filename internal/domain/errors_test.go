package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/todosync/internal/domain"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"text": domain.MsgRequired,
		"id":   domain.MsgRequired,
	}}

	want := "validation error: id: is required; text: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("ValidationError does not match ErrValidation")
	}
}

func TestIsRemoteFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network", fmt.Errorf("todo-resource: %w", domain.ErrNetwork), true},
		{"rejected", fmt.Errorf("HTTP 500: %w", domain.ErrRejected), true},
		{"rejected not found", fmt.Errorf("%w: %w", domain.ErrRejected, domain.ErrNotFound), true},
		{"local not found", domain.ErrNotFound, false},
		{"local validation", &domain.ValidationError{Fields: map[string]string{"text": "x"}}, false},
		{"unavailable", domain.ErrUnavailable, false},
		{"closed", domain.ErrClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.IsRemoteFailure(tt.err); got != tt.want {
				t.Errorf("IsRemoteFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
