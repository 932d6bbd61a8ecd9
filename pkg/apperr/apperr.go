// Package apperr defines the error taxonomy shared by all services.
// Handlers map each kind to an HTTP status so failures reach clients as
// structured results instead of opaque 500s.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindValidation - a required field is missing or malformed.
	KindValidation Kind = iota
	// KindPrecondition - the entity is not in the state the operation requires.
	KindPrecondition
	// KindPathResolution - the client/day/set/video addressing chain does not resolve.
	KindPathResolution
	// KindExternalAdapter - an identity, storage or publishing collaborator failed.
	KindExternalAdapter
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Precondition(format string, args ...interface{}) error {
	return &Error{Kind: KindPrecondition, Msg: fmt.Sprintf(format, args...)}
}

func PathResolution(format string, args ...interface{}) error {
	return &Error{Kind: KindPathResolution, Msg: fmt.Sprintf(format, args...)}
}

func ExternalAdapter(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindExternalAdapter, Msg: fmt.Sprintf(format, args...), Err: err}
}

func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindValidation
}

func IsPrecondition(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindPrecondition
}

func IsPathResolution(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindPathResolution
}

func IsExternalAdapter(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindExternalAdapter
}

// HTTPStatus maps an error to the status code handlers should respond with.
func HTTPStatus(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindPrecondition:
		return http.StatusConflict
	case KindPathResolution:
		return http.StatusNotFound
	case KindExternalAdapter:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
