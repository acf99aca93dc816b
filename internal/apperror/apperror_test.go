package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapping(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{fmt.Errorf("record sale: %w", ErrNotFound), "not_found", http.StatusNotFound},
		{ErrInsufficientStock, "insufficient_stock", http.StatusBadRequest},
		{ErrInvalidInput, "invalid_input", http.StatusBadRequest},
		{ErrUnauthorized, "unauthorized", http.StatusUnauthorized},
		{ErrInsufficientData, "insufficient_data", http.StatusOK},
		{ErrNoVelocity, "no_velocity", http.StatusOK},
		{errors.New("boom"), "internal_error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := Code(tt.err); got != tt.code {
			t.Errorf("Code(%v) = %q, want %q", tt.err, got, tt.code)
		}
		if got := HTTPStatus(tt.err); got != tt.status {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.status)
		}
	}
}
