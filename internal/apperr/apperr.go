// Package apperr defines the error taxonomy shared by the command and query
// services. Two kinds are caller-correctable: invalid requests and missing
// resources. Everything else (storage faults) is passed through untouched so
// the handler layer can map it to a server error.
package apperr

import (
	"errors"
	"fmt"
)

type kind int

const (
	kindInvalid kind = iota + 1
	kindNotFound
)

// Error is a business-rule error with a caller-facing message.
type Error struct {
	kind kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Invalid returns an invalid-request error.
func Invalid(msg string) error {
	return &Error{kind: kindInvalid, msg: msg}
}

// Invalidf returns an invalid-request error with a formatted message.
func Invalidf(format string, args ...any) error {
	return &Error{kind: kindInvalid, msg: fmt.Sprintf(format, args...)}
}

// NotFound returns a resource-not-found error.
func NotFound(msg string) error {
	return &Error{kind: kindNotFound, msg: msg}
}

// NotFoundf returns a resource-not-found error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &Error{kind: kindNotFound, msg: fmt.Sprintf(format, args...)}
}

// IsInvalid reports whether err is an invalid-request error.
func IsInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == kindInvalid
}

// IsNotFound reports whether err is a resource-not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == kindNotFound
}
