// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/electrocart/pkg/httpx"
	itemdomain "github.com/ghuser/electrocart/services/item/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

// WriteSafeError is WriteError with 5xx messages replaced by the status
// text when isProduction is set.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// Status returns the HTTP status WriteError would use for err.
func Status(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrUnknownKind),
		errors.Is(err, itemdomain.ErrInvalidAttribute),
		errors.Is(err, itemdomain.ErrInvalidExtra):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, itemdomain.ErrExtrasNotAllowed),
		errors.Is(err, itemdomain.ErrExtrasLimitExceeded):
		return http.StatusConflict // 409
	case errors.Is(err, itemdomain.ErrEmptyCart):
		return http.StatusBadRequest // 400
	case errors.Is(err, httpx.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge // 413
	default:
		return http.StatusInternalServerError // 500
	}
}
