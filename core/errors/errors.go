package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the service.
const (
	CodeValidation = "ValidationError"
	CodeNotFound   = "NotFoundError"
	CodeConflict   = "ConflictError"
	CodeStorage    = "StorageError"
)

// StandardError is the service-wide error shape. Handlers map Code to
// an HTTP status; everything else treats it as a plain error.
type StandardError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status for the error code.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NewValidation(message, details string) *StandardError {
	return &StandardError{Code: CodeValidation, Message: message, Details: details}
}

func NewNotFound(message, details string) *StandardError {
	return &StandardError{Code: CodeNotFound, Message: message, Details: details}
}

func NewConflict(message, details string) *StandardError {
	return &StandardError{Code: CodeConflict, Message: message, Details: details}
}

func NewStorage(operation string, err error) *StandardError {
	return &StandardError{
		Code:    CodeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Details: err.Error(),
	}
}

// CodeOf returns the error code, or empty string for foreign errors.
func CodeOf(err error) string {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
