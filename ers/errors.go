package ers

import (
	"errors"
	"fmt"
)

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error. ers.Is uses
// errors.Is.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// When returns the error IF the conditional is true, and returns nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Whenf constructs an error (using fmt.Errorf) IF the conditional is
// true, and returns nil otherwise.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Ok returns true when the error is nil, and false otherwise.
func Ok(err error) bool { return err == nil }

// IsIntegrity reports whether the error signals that persisted data
// could not be trusted, as opposed to a failure to reach it at all.
func IsIntegrity(err error) bool { return Is(err, ErrCorruptData, ErrInvariantViolation) }
