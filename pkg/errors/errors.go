// Package errors defines the sentinel errors shared across the search
// engine and a small wrapper for attaching context to them.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocumentID is returned when a document id outside the
	// store's range is looked up. Ids are only ever issued by the store,
	// so hitting this is a programming error in the caller.
	ErrInvalidDocumentID = errors.New("invalid document id")

	// ErrInvalidInput is returned for malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
)

// AppError wraps a sentinel error with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New wraps a sentinel error with a message.
func New(sentinel error, message string) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: message,
	}
}

// Newf wraps a sentinel error with a formatted message.
func Newf(sentinel error, format string, args ...any) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}
