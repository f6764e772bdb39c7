package justext

import (
	"errors"
	"fmt"
)

// Application error codes returned by Errorf/ErrorCode throughout this
// module and its subpackages.
const (
	ECONFLICT        = "conflict"
	EINTERNAL        = "internal"
	EINVALID         = "invalid"
	ENOTFOUND        = "not_found"
	EUNKNOWNLANGUAGE = "unknown_language"
)

// Error is an application error carrying a machine-checkable code in
// addition to a human-readable message.
type Error struct {
	code    string
	message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Errorf constructs an *Error with the given code and a formatted message.
func Errorf(code, format string, args ...any) error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// ErrorCode unwraps an error to its application error code.
// Returns EINTERNAL for any non-nil error that isn't an *Error, and the
// empty string for a nil error.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an error to its human-readable message.
// Returns err.Error() for any non-nil error that isn't an *Error, and the
// empty string for a nil error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.message
	}
	return err.Error()
}
