// Released under an MIT license. See LICENSE.

// Package fault provides lisa's classified evaluation errors.
//
// Faults are raised by panicking deep inside the evaluator and recovered at
// the boundary where a caller asked for something to be evaluated.
package fault

import (
	"errors"
	"fmt"
)

// Class is the kind of fault raised.
type Class int

// Fault classes. All are fatal to the evaluation in progress.
const (
	ArityError Class = iota
	TypeMismatch
	UnboundSymbol
	NotCallable
	ScopeViolation
	UnsupportedDerivative
	IndexOutOfBounds
)

// String returns the name of the class c.
func (c Class) String() string {
	switch c {
	case ArityError:
		return "ArityError"
	case TypeMismatch:
		return "TypeMismatch"
	case UnboundSymbol:
		return "UnboundSymbol"
	case NotCallable:
		return "NotCallable"
	case ScopeViolation:
		return "ScopeViolation"
	case UnsupportedDerivative:
		return "UnsupportedDerivative"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	}

	return fmt.Sprintf("Class(%d)", int(c))
}

// T (fault) is an evaluation error with a class and a message.
type T struct {
	Class   Class
	Message string
}

type fault = T

// New creates a new fault.
func New(c Class, format string, args ...interface{}) *fault {
	return &fault{Class: c, Message: fmt.Sprintf(format, args...)}
}

// Error returns the text of the fault f.
func (f *fault) Error() string {
	return f.Class.String() + ": " + f.Message
}

// Is reports whether target is a fault of the same class.
// This lets errors.Is(err, fault.New(fault.ScopeViolation, "")) match.
func (f *fault) Is(target error) bool {
	t, ok := target.(*fault)

	return ok && t.Class == f.Class
}

// Raise panics with a new fault.
func Raise(c Class, format string, args ...interface{}) {
	panic(New(c, format, args...))
}

// Recover converts a panic carrying a fault into an error stored in err.
// It must be called directly by a deferred function.
// Any other panic is propagated.
func Recover(err *error, r interface{}) {
	if r == nil {
		return
	}

	switch r := r.(type) {
	case *fault:
		*err = r
	case string:
		// The Is/To helpers of the value packages panic with strings.
		*err = New(TypeMismatch, "%s", r)
	default:
		panic(r)
	}
}

// ClassOf returns the class of err if it wraps a fault.
func ClassOf(err error) (Class, bool) {
	var f *fault
	if errors.As(err, &f) {
		return f.Class, true
	}

	return 0, false
}
