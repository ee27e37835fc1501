package types

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError classifies a failure with the HTTP status it maps to. Services
// validate inputs first and fail fast with InvalidInput/NotFound before any
// external call; collaborator failures are wrapped with their message kept
// for diagnostics.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewExtractionError(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

func NewStoreError(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

func NewGenerationError(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf resolves the HTTP status for any error, defaulting to 500 for
// errors that were not classified at a service boundary.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
