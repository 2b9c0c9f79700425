package service

import (
	"errors"
	"fmt"
)

// ErrorKind places a service failure in the taxonomy the HTTP layer maps to
// status codes. NotFound also covers authorization failures that are
// deliberately masked as absence (viewing or approving a booking you have no
// relation to, booking your own item).
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindValidation
	KindForbidden
	KindConflict
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from an error chain, zero if the error does not
// carry one.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
