// Package contract asserts the internal protocol between producers, builders and
// terminal consumers. Assertions are compiled in only when building with the
// goarrays_debug tag; otherwise Assert is a no-op the compiler removes.
package contract

import "errors"

// ErrViolation is the root error of every panic raised by Assert.
var ErrViolation = errors.New("contract violation")

// A Violation is the panic value raised when an assertion fails.
type Violation struct {
	// Msg describes the broken precondition.
	Msg string
}

// Assert panics with a *Violation if checks are enabled and cond is false.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic(&Violation{Msg: msg})
	}
}

// Error implements error.
func (v *Violation) Error() string {
	return "contract violation: " + v.Msg
}

// Unwrap returns ErrViolation.
func (v *Violation) Unwrap() error {
	return ErrViolation
}
