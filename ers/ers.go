// Package ers provides the constant sentinel errors used throughout
// reclist, and a few small helpers for testing and constructing them.
//
// Operations wrap these sentinels (with fmt.Errorf and %w) so that
// callers can distinguish, for example, a missing record file from a
// truncated one using errors.Is or ers.Is.
package ers

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is,
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the errors.Is interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}
