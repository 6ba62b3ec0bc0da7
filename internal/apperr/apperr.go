// Package apperr defines the error kinds the API distinguishes. Handlers map
// these to HTTP status codes; anything else is treated as an internal fault.
package apperr

import "errors"

var (
	// ErrNotFound covers records that do not exist or sit outside the
	// caller's ownership scope. The two cases are deliberately
	// indistinguishable to the caller.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned when the caller is authenticated but does
	// not own the patient behind the record being mutated.
	ErrForbidden = errors.New("permission denied")
)

// ValidationError reports a rejected field value or a violated record rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Validation builds a field-level validation error.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
