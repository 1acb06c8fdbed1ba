// Package serrors provides semantic error kinds for the application.
// A Kind is a comparable sentinel naming a category of failure; the
// Error wrapper attaches a kind to an arbitrary message and optional
// cause while remaining fully compatible with errors.Is and errors.As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds
// created with NewKind. It distinguishes semantic kinds from ordinary
// errors.
type Kind interface {
	error
	isKind()
}

// kind is the unexported Kind implementation used as a sentinel value
// for one semantic category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the given
// name. Kinds are comparable and match through errors.Is/As when
// carried by the Error wrapper below.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds raised by the measurement and consolidation engines. Any of
// these aborts the grocery-list build that produced it; there is no
// partial-success mode.
var (
	// ErrInvalidUnit indicates a unit identifier that cannot be resolved
	// to a known unit. It surfaces at the data-load boundary, before
	// quantities reach the engines.
	ErrInvalidUnit = NewKind("INVALID_UNIT")
	// ErrDimensionMismatch indicates an addition or conversion between
	// incompatible physical dimensions (e.g. mass plus volume).
	ErrDimensionMismatch = NewKind("DIMENSION_MISMATCH")
	// ErrUnregularizable indicates an ingredient whose stated dimension
	// cannot be reconciled with its material's canonical dimension using
	// the available conversion factors.
	ErrUnregularizable = NewKind("UNREGULARIZABLE_QUANTITY")
	// ErrMalformedRecord indicates a raw quantity record from an external
	// data source that is missing required fields.
	ErrMalformedRecord = NewKind("MALFORMED_QUANTITY_RECORD")
)

// General service kinds used by the API and storage layers.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates the caller sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrConflict indicates a state conflict such as a duplicate resource.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal error.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind sentinel, an optional
// wrapped cause and an optional message.
//
// Matching semantics:
//   - errors.Is(err, target) matches if target matches either the kind
//     sentinel or the wrapped cause.
//   - errors.As(err, target) succeeds for either the kind sentinel or
//     the wrapped cause.
//
// Error string formatting:
//   - msg and cause set: "<msg>: <cause>"
//   - only msg set: "<msg>"
//   - only cause set: "<cause>"
//   - neither set: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and a formatted
// human-readable message. Use Wrap to also record a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping the
// provided cause and attaching a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind, without a
// message or cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, letting errors.Unwrap/Is/As walk
// the underlying chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches type assertions against either the kind sentinel or the
// wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel of this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
