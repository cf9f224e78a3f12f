package wikipedia

import (
	"fmt"

	errors "github.com/Laisky/errors/v2"
)

// ErrorCode identifies a machine-stable lookup failure.
type ErrorCode string

const (
	// ErrCodeArticleNotFound means the search produced no usable title.
	ErrCodeArticleNotFound ErrorCode = "ARTICLE_NOT_FOUND"
	// ErrCodeUnsuccessfulResponse means an endpoint answered outside the 2xx range,
	// or answered 2xx with an API error envelope.
	ErrCodeUnsuccessfulResponse ErrorCode = "UNSUCCESSFUL_RESPONSE"
	// ErrCodeURL means the request could not be built or dispatched.
	ErrCodeURL ErrorCode = "URL_ERROR"
	// ErrCodeParse means the body is not JSON or lacks an expected text field.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
)

var (
	// ErrEmptyQuery is returned when the query has no searchable words.
	ErrEmptyQuery = errors.New("query cannot be empty")
	// ErrTooManyRedirects is returned when an endpoint redirects too many times.
	ErrTooManyRedirects = errors.New("too many redirects")
)

// Error is a typed lookup error carrying its code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error renders the human-readable message.
func (e *Error) Error() string {
	if e == nil {
		return "wikipedia error: <nil>"
	}

	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("wikipedia error: %s", e.Code)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError constructs a typed lookup error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// wrapError constructs a typed lookup error around cause.
func wrapError(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// AsError extracts a typed lookup error from the error chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// IsCode reports whether the error chain contains the given code.
func IsCode(err error, code ErrorCode) bool {
	if typed, ok := AsError(err); ok {
		return typed.Code == code
	}
	return false
}
