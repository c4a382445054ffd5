// Package errors augments the standard errors with a Wrap() method
// to attach a cause to a sentinel error without altering its message.
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Newf builds an Error from a format string
func Newf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Error carries a message and an optional cause.
//
// Sentinel errors declared at package level are never mutated: Wrap returns
// a copy which still matches the sentinel with Is.
type Error struct {
	msg    string
	err    error
	parent *Error
}

// Error message
func (e *Error) Error() string {
	return e.msg
}

// Details returns the message followed by the chain of causes.
func (e *Error) Details() string {
	if e.err == nil {
		return e.msg
	}
	var cause string
	if inner, ok := e.err.(*Error); ok {
		cause = inner.Details()
	} else {
		cause = e.err.Error()
	}
	if e.msg == "" {
		return cause
	}
	return e.msg + ": " + cause
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a nested error
func (e *Error) Wrap(err error) *Error {
	root := e
	if e.parent != nil {
		root = e.parent
	}
	return &Error{msg: e.msg, err: err, parent: root}
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	if e == target {
		return true
	}
	t, ok := target.(*Error)
	return ok && e.parent != nil && e.parent == t
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
