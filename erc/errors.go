// Package erc provides a simple error aggregation tool for collecting
// the several failures that can arise while a single operation
// unwinds, such as a failed write followed by a failed close. The
// tools are compatible with go's native error wrapping.
package erc

import (
	"errors"
	"strings"
)

// Stack represents the error type returned by a Collector when it has
// more than one error. The implementation provides support for
// errors.Unwrap and errors.Is, and provides an Errors() method which
// returns a slice of the constituent errors.
type Stack struct {
	err  error
	next *Stack
}

func (e *Stack) append(err error) *Stack { return &Stack{err: err, next: e} }

// Error produces the aggregated error strings, oldest first.
func (e *Stack) Error() string {
	if e.err == nil && e.next == nil {
		return "empty error"
	}

	if e.next != nil && e.next.err != nil {
		return strings.Join([]string{e.next.Error(), e.err.Error()}, "; ")
	}

	return e.err.Error()
}

// Is calls errors.Is on the underlying error to provide compatibility
// with errors.Is, which takes advantage of this interface.
func (e *Stack) Is(err error) bool { return errors.Is(e.err, err) }

// As calls errors.As on the underlying error.
func (e *Stack) As(target any) bool { return errors.As(e.err, target) }

// Unwrap returns the next error in the stack, and is compatible
// with errors.Unwrap.
func (e *Stack) Unwrap() error {
	if e.next != nil && e.next.err != nil {
		return e.next
	}
	return nil
}

// Errors returns the constituent errors, oldest first.
func (e *Stack) Errors() []error {
	var out []error
	for cur := e; cur != nil; cur = cur.next {
		if cur.err != nil {
			out = append(out, cur.err)
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Collector aggregates errors which can be resolved as a single
// error. The zero value is ready to use. Collectors are not safe for
// concurrent use.
type Collector struct {
	stack *Stack
	count int
}

// Add collects an error if that error is non-nil.
func (ec *Collector) Add(err error) {
	if err == nil {
		return
	}

	if ec.stack == nil {
		ec.stack = &Stack{}
	}

	ec.stack = ec.stack.append(err)
	ec.count++
}

// Check executes a simple function and if it returns an error, adds
// it to the collector, primarily for use in defer statements.
func (ec *Collector) Check(fn func() error) { ec.Add(fn()) }

// When adds err to the collector if the condition is true.
func (ec *Collector) When(cond bool, err error) {
	if cond {
		ec.Add(err)
	}
}

// HasErrors returns true if there are any underlying errors, and
// false otherwise.
func (ec *Collector) HasErrors() bool { return ec.count > 0 }

// Len reports the number of collected errors.
func (ec *Collector) Len() int { return ec.count }

// Resolve returns nil if no errors have been collected, the error
// itself when exactly one was collected, and a *Stack otherwise.
func (ec *Collector) Resolve() error {
	switch ec.count {
	case 0:
		return nil
	case 1:
		return ec.stack.err
	default:
		return ec.stack
	}
}
