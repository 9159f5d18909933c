// Package common defines sentinel errors and small helpers shared by the
// client and the backend. Callers match the sentinels with errors.Is.
package common

import (
	"errors"
	"fmt"
)

var (
	// repository level
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service level
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// tokens
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// AppError carries a human-readable message next to one of the sentinels
// above, so transport layers can pick a status code with errors.Is and still
// show the user something meaningful.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(field, message string) *AppError {
	return &AppError{Err: ErrorValidation, Message: message, Field: field}
}

func NotFound(resource, id string) *AppError {
	return &AppError{Err: ErrorNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrorAlreadyExists, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrorUnauthorized, Message: message}
}
