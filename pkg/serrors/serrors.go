// Package serrors provides semantic error kinds for the scan grid. A kind is
// a comparable sentinel; Error wraps a kind with an optional cause and
// message while keeping errors.Is/As working against both.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and usable with errors.Is/As through Error.
func NewKind(name string) Kind { return kind{s: name} }

// Default kinds cover the grid's failure taxonomy. Compliance denials and
// proxy unavailability get their own kinds because the scheduler routes them
// differently from ordinary scan failures.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates the caller sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrConflict indicates a state conflict (e.g. result not ready yet).
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected internal error.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates a deadline expired.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates a per-domain budget denial.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrComplianceDenied indicates the compliance gate refused the domain.
	// Never retryable.
	ErrComplianceDenied = NewKind("COMPLIANCE_DENIED")
	// ErrProxyUnavailable indicates the proxy pool has no healthy proxy.
	ErrProxyUnavailable = NewKind("PROXY_UNAVAILABLE")
	// ErrScanFailed indicates every engine failed for an attempt.
	ErrScanFailed = NewKind("SCAN_FAILED")
)

// Error is a semantic error carrying a kind sentinel, an optional wrapped
// cause and an optional message.
//
// Matching semantics: errors.Is/As match against either the kind sentinel or
// the wrapped cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
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

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
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

// As matches against either the kind sentinel or the wrapped cause.
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

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }
