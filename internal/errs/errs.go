// Package errs defines the error taxonomy shared by services and handlers.
package errs

import (
	"errors"
	"net/http"
)

// Kind classifies an error for transport mapping.
type Kind uint8

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidState
)

// ErrDuplicate is returned by repositories when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate key")

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidState:
		return "invalid_state"
	default:
		return "internal"
	}
}

// HTTPStatus maps the kind to a response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput, KindInvalidState:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string // field-keyed validation errors
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// InvalidFields creates an InvalidInput error carrying field errors.
func InvalidFields(message string, fields map[string]string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Fields: fields}
}

// WithDetail attaches a detail value and returns the same error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// KindOf returns the kind of err, or KindInternal when err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is classified with kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
