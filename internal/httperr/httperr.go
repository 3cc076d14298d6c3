// Package httperr maps domain error kinds to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/zanzibar-explore/tours-backend/internal/domain"
)

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message for err. Unexpected errors get a
// generic message so internal detail never leaks into responses.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
