// Package errhttp maps inventory domain error codes to HTTP status codes
// and writes the uniform failure envelope. Add new codes to codeStatus as
// the taxonomy grows.
package errhttp

import (
	"net/http"

	"github.com/ghuser/atelier/pkg/httpx"
	"github.com/ghuser/atelier/services/inventory/domain"
)

// codeStatus maps each taxonomy code to its HTTP status. Codes absent from
// the map (including unexpected_error) fall back to 500.
var codeStatus = map[domain.Code]int{
	domain.CodeUnauthorized:       http.StatusUnauthorized,
	domain.CodeValidationError:    http.StatusBadRequest,
	domain.CodeInvalidCategory:    http.StatusBadRequest,
	domain.CodeInvalidMetalType:   http.StatusBadRequest,
	domain.CodeInvalidMetalPurity: http.StatusBadRequest,
	domain.CodeInvalidStoneType:   http.StatusBadRequest,
	domain.CodeInvalidSize:        http.StatusBadRequest,

	domain.CodeDuplicateSKU:     http.StatusConflict,
	domain.CodeDuplicateBarcode: http.StatusConflict,

	domain.CodeInvalidStatus:     http.StatusConflict,
	domain.CodeInvalidTransition: http.StatusUnprocessableEntity,

	domain.CodeNotFound:               http.StatusNotFound,
	domain.CodeConcurrentModification: http.StatusConflict,

	domain.CodeDatabaseError:   http.StatusInternalServerError,
	domain.CodeUnexpectedError: http.StatusInternalServerError,
}

// WriteError classifies err by its taxonomy code and writes the failure
// envelope. Wrapped sentinels are matched through errors.As, so services may
// add context with fmt.Errorf("...: %w", err) freely.
func WriteError(w http.ResponseWriter, err error) {
	code := domain.CodeOf(err)
	httpx.Failure(w, StatusOf(code), err.Error(), string(code))
}

// StatusOf returns the HTTP status for a taxonomy code.
func StatusOf(code domain.Code) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
