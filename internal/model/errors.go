package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a protocol-level error with a fixed HTTP status and a
// single-message wire body of the form {"error": "..."}.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// FieldError represents a single field-level validation violation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a create payload, not
// just the first. The wire body is {"errors": [{"field", "message"}, ...]}.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	msg := fmt.Sprintf("%s: %s", e.Errors[0].Field, e.Errors[0].Message)
	if len(e.Errors) > 1 {
		msg = fmt.Sprintf("%s (and %d more violations)", msg, len(e.Errors)-1)
	}
	return msg
}

// WriteJSON writes the violation list as a 422 response
func (e *ValidationError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

func NewUnauthorizedError(detail string) *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: detail,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewBadRequestError(detail string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: detail,
	}
}

func NewInternalError(detail string) *APIError {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: detail,
	}
}

func NewValidationError(errors []FieldError) *ValidationError {
	return &ValidationError{Errors: errors}
}
