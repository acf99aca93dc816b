// Package apperror defines the caller-visible failure kinds of the service
// and their mapping onto HTTP responses.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrInsufficientData  = errors.New("not enough sales data to predict yet")
	ErrNoVelocity        = errors.New("no daily sales recorded")
	ErrUnauthorized      = errors.New("could not validate credentials")
	ErrInvalidInput      = errors.New("invalid input")
)

// Code returns the stable error code written in JSON error bodies.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, ErrNoVelocity):
		return "no_velocity"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal_error"
	}
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInsufficientData), errors.Is(err, ErrNoVelocity):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
