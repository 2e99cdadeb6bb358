// Package apperr carries business errors from the services to the HTTP
// boundary, where they are translated exactly once into wire responses.
package apperr

import "errors"

type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindNotFound    Kind = "NOT_FOUND"
	KindConflict    Kind = "CONFLICT"
	KindUnsupported Kind = "UNSUPPORTED"
)

// Error is a business rule violation tied to a field or tag name.
type Error struct {
	kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Kind() Kind    { return e.kind }

func Validation(field, message string) error {
	return &Error{kind: KindValidation, Field: field, Message: message}
}

// NotFound is returned both for absent entities and for access that is not
// permitted, so that unauthorized callers cannot probe for existence.
func NotFound(field, message string) error {
	return &Error{kind: KindNotFound, Field: field, Message: message}
}

func Conflict(field, message string) error {
	return &Error{kind: KindConflict, Field: field, Message: message}
}

func Unsupported(message string) error {
	return &Error{kind: KindUnsupported, Field: "state", Message: message}
}

// KindOf extracts the error kind; empty for infrastructure faults.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ""
}

// Violation returns the (field, message) pair for the wire shape.
func Violation(err error) (string, string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Field, e.Message
	}
	return "", err.Error()
}
