// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stageops/pkg/httpx"
	invdomain "github.com/ghuser/stageops/services/inventory/domain"
	procdomain "github.com/ghuser/stageops/services/procurement/domain"
	supdomain "github.com/ghuser/stageops/services/supplier/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, procdomain.ErrOrderNotFound),
		errors.Is(err, invdomain.ErrItemNotFound),
		errors.Is(err, supdomain.ErrSupplierNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, procdomain.ErrPermissionDenied):
		return http.StatusForbidden // 403
	case errors.Is(err, procdomain.ErrValidation),
		errors.Is(err, invdomain.ErrInvalidItem),
		errors.Is(err, supdomain.ErrInvalidSupplier):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, procdomain.ErrInvalidTransition),
		errors.Is(err, procdomain.ErrConflict),
		errors.Is(err, invdomain.ErrInsufficientStock),
		errors.Is(err, invdomain.ErrItemAlreadyExists),
		errors.Is(err, supdomain.ErrSupplierAlreadyExists):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
