package errors

import (
	"net/http"
	"strings"

	"roster/internal/domain/entity"
)

// ValidationError carries the complete set of failed field rules so the
// caller can render every problem at once. It implements AppError.
type ValidationError struct {
	fieldErrors entity.FieldErrors
}

// NewValidationError wraps the failed rules from entity validation.
func NewValidationError(fieldErrors entity.FieldErrors) *ValidationError {
	return &ValidationError{fieldErrors: fieldErrors}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fieldErrors))
	for _, fe := range e.fieldErrors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldErrors returns every failed rule in evaluation order.
func (e *ValidationError) FieldErrors() entity.FieldErrors {
	return e.fieldErrors
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "輸入資料驗證失敗"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}
