// Package apperrors defines the error taxonomy shared by every layer of the
// API. Repositories and services return these sentinels (usually wrapped with
// additional context) and the controllers translate them into HTTP responses.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmpty signals that a listing matched no documents. Mapped to 204.
	ErrEmpty = errors.New("empty list")
	// ErrNotFound signals a lookup by id or imdbId that matched nothing.
	ErrNotFound = errors.New("entity not found")
	// ErrInvalidID signals an id path parameter that is not a valid ObjectID hex.
	ErrInvalidID = errors.New("failed to parse id (id not valid)")
	// ErrWrongImdbID signals an imdbId that does not match the 'tt0000' format.
	ErrWrongImdbID = errors.New("imdbId malformed (imdbId not valid)")
	// ErrAlreadyExists signals a creation whose imdbId is already taken.
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrImdbIDInUse signals an update/patch that would steal another entity's imdbId.
	ErrImdbIDInUse = errors.New("imdbId is already in use")
	// ErrFieldNotAllowed signals a patch on a field outside the allow-list.
	ErrFieldNotAllowed = errors.New("field not allowed")
	// ErrValidation signals a semantically invalid value (e.g. rating out of range).
	ErrValidation = errors.New("validation failed")
	// ErrInternal signals a persistence failure. Mapped to 500.
	ErrInternal = errors.New("an internal server error occurred")
)

// StatusCode maps an error (possibly wrapped) to its HTTP status code.
// Unknown errors are treated as internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrEmpty):
		return http.StatusNoContent
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrWrongImdbID),
		errors.Is(err, ErrFieldNotAllowed),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrImdbIDInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
