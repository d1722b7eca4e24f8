package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryProject  Category = "project"
	CategoryUsage    Category = "usage"
	CategoryConflict Category = "conflict"
	CategoryRegistry Category = "registry"
	CategoryIO       Category = "io"
)

// GexError is a structured error with a stable code, detail text, and a fix hint.
type GexError struct {
	// Code is a unique error identifier (e.g., "E020").
	Code string

	// Category is the error type (project, usage, conflict, registry, io).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation; may span multiple lines.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *GexError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *GexError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *GexError) WithDetail(d string) *GexError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *GexError) WithSuggestion(s string) *GexError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *GexError) Wrap(err error) *GexError {
	e.Wrapped = err
	return e
}

// New creates a GexError from a registered error code.
func New(code string) *GexError {
	template, ok := registry[code]
	if !ok {
		return &GexError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &GexError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new GexError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *GexError {
	return &GexError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a GexError.
func FromError(err error, code string) *GexError {
	if err == nil {
		return nil
	}
	if ge, ok := err.(*GexError); ok {
		return ge
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of err when it is (or wraps) a GexError.
func CodeOf(err error) string {
	var ge *GexError
	if stderrors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

// CategoryOf returns the category of err when it is (or wraps) a GexError.
func CategoryOf(err error) Category {
	var ge *GexError
	if stderrors.As(err, &ge) {
		return ge.Category
	}
	return ""
}
