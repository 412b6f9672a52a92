package validator

import "errors"

var (
	// ErrValidationFailed matches every error returned by the strict entry points.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownField is reported by Schema.Check for cross-field rules that
	// reference a field the schema does not declare.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField is the panic value for declaring a field twice.
	ErrDuplicateField = errors.New("duplicate field")
)
