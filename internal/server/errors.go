// Package server provides the HTTP REST API for the careers backend.
package server

import (
	"errors"
	"net/http"

	"github.com/biocom/careers-api/internal/store"
)

// ErrInvalidCredentials indicates a login with an unrecognized credential
// pair. The message is deliberately generic.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrNotAuthenticated indicates a request without a valid session token.
type ErrNotAuthenticated struct{}

func (e *ErrNotAuthenticated) Error() string {
	return "not authenticated"
}

// HTTPStatus maps the error taxonomy to HTTP status codes. Anything
// outside the taxonomy is an internal error; its details are never sent
// to the client.
func HTTPStatus(err error) int {
	var notFound *store.NotFoundError
	var validation *store.ValidationError
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	}
	switch err.(type) {
	case *ErrInvalidCredentials, *ErrNotAuthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
