package transform

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error
type ErrorType string

// Error types
const (
	ParseError  ErrorType = "parse"
	RenderError ErrorType = "render"
	InputError  ErrorType = "input"
)

// Common errors that can be used throughout the package
var (
	ErrNoBody        = errors.New("document has no body")
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)

// Error is an error annotated with its category and the function that
// reported it. It renders as "[type:func] message: cause".
type Error struct {
	Type    ErrorType
	Func    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s:%s] %v", e.Type, e.Func, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Func, e.Message, e.Err)
}

// Unwrap returns the wrapped cause
func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with context information
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Func: funcName, Message: message, Err: err}
}

// WrapParseError wraps a parsing error
func WrapParseError(err error, funcName, message string) error {
	return WrapError(err, ParseError, funcName, message)
}

// WrapRenderError wraps a serialization error
func WrapRenderError(err error, funcName, message string) error {
	return WrapError(err, RenderError, funcName, message)
}

// WrapInputError wraps an error reading or limiting the input
func WrapInputError(err error, funcName, message string) error {
	return WrapError(err, InputError, funcName, message)
}

// IsErrorType checks if any *Error in the chain of err has the given type
func IsErrorType(err error, errorType ErrorType) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Type == errorType {
			return true
		}
		err = e.Err
	}
	return false
}

// IsParseError returns true if the error is a parse error
func IsParseError(err error) bool {
	return IsErrorType(err, ParseError)
}

// IsRenderError returns true if the error is a render error
func IsRenderError(err error) bool {
	return IsErrorType(err, RenderError)
}

// IsInputError returns true if the error is an input error
func IsInputError(err error) bool {
	return IsErrorType(err, InputError)
}
