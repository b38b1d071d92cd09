// Package domain holds the inventory bounded context's shared types and
// error taxonomy.
package domain

import (
	"errors"

	"github.com/ghuser/atelier/services/inventory/domain/models"
)

// Code is the stable machine-readable error code exposed to callers.
// The set of codes is part of the external contract and must not change
// without a client migration.
type Code string

const (
	CodeUnauthorized           Code = "unauthorized"
	CodeValidationError        Code = "validation_error"
	CodeInvalidCategory        Code = "invalid_category"
	CodeInvalidMetalType       Code = "invalid_metal_type"
	CodeInvalidMetalPurity     Code = "invalid_metal_purity"
	CodeInvalidStoneType       Code = "invalid_stone_type"
	CodeInvalidSize            Code = "invalid_size"
	CodeDuplicateSKU           Code = "duplicate_sku"
	CodeDuplicateBarcode       Code = "duplicate_barcode"
	CodeInvalidStatus          Code = "invalid_status"
	CodeInvalidTransition      Code = "invalid_transition"
	CodeNotFound               Code = "not_found"
	CodeConcurrentModification Code = "concurrent_modification"
	CodeDatabaseError          Code = "database_error"
	CodeUnexpectedError        Code = "unexpected_error"
)

// Error is a domain error carrying a taxonomy code. The sentinel instances
// below are matched with errors.Is; wrap them with fmt.Errorf("...: %w", err)
// to add context without losing the code.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	ErrUnauthorized = &Error{CodeUnauthorized, "authentication required"}
	ErrValidation   = &Error{CodeValidationError, "validation failed"}

	ErrInvalidCategory    = &Error{CodeInvalidCategory, "category not found for this organization"}
	ErrInvalidMetalType   = &Error{CodeInvalidMetalType, "metal type not found for this organization"}
	ErrInvalidMetalPurity = &Error{CodeInvalidMetalPurity, "metal purity not found for this organization"}
	ErrInvalidStoneType   = &Error{CodeInvalidStoneType, "stone type not found for this organization"}
	ErrInvalidSize        = &Error{CodeInvalidSize, "size not found for this organization"}

	ErrDuplicateSKU     = &Error{CodeDuplicateSKU, "an item with this SKU already exists"}
	ErrDuplicateBarcode = &Error{CodeDuplicateBarcode, "an item with this barcode already exists"}

	ErrInvalidStatus = &Error{CodeInvalidStatus, "item status does not permit this operation"}
	ErrInvalidTransition = &Error{CodeInvalidTransition,
		"requested status transition is not allowed"}

	ErrItemNotFound  = &Error{CodeNotFound, "inventory item not found"}
	ErrStoneNotFound = &Error{CodeNotFound, "item stone not found"}

	ErrConcurrentModification = &Error{CodeConcurrentModification,
		"item was modified concurrently; refetch the current version and resubmit"}

	ErrDatabase = &Error{CodeDatabaseError, "storage operation failed"}
)

// invalidReferenceErrors maps each reference kind to its sentinel.
var invalidReferenceErrors = map[models.RefKind]*Error{
	models.RefCategory:    ErrInvalidCategory,
	models.RefMetalType:   ErrInvalidMetalType,
	models.RefMetalPurity: ErrInvalidMetalPurity,
	models.RefStoneType:   ErrInvalidStoneType,
	models.RefSize:        ErrInvalidSize,
}

// InvalidReference returns the sentinel for a failed referential integrity
// check on the given reference kind.
func InvalidReference(kind models.RefKind) *Error {
	if err, ok := invalidReferenceErrors[kind]; ok {
		return err
	}
	return ErrValidation
}

// CodeOf extracts the taxonomy code from err. Errors that do not carry a
// domain code classify as unexpected_error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeUnexpectedError
}
