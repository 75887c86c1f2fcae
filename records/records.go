// Package records defines the fixed-layout record types stored by the
// record-management tools: employees, students, and courses. Every
// type has a constant binary size, so lists of them can be persisted
// with recfile, and a set of named sort orders.
package records

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/recordkit/reclist/ers"
)

// Record is implemented by every record type.
type Record interface {
	RecordID() uuid.UUID
}

// setText stores s in the fixed-width field dst, padding with NUL
// bytes. Text that does not fit, or that contains NUL bytes, is
// rejected rather than truncated.
func setText(field string, dst []byte, s string) error {
	switch {
	case len(s) > len(dst):
		return fmt.Errorf("%s %q is longer than %d bytes: %w", field, s, len(dst), ers.ErrInvalidInput)
	case !utf8.ValidString(s) || bytes.IndexByte([]byte(s), 0) >= 0:
		return fmt.Errorf("%s %q is not printable text: %w", field, s, ers.ErrInvalidInput)
	}

	clear(dst)
	copy(dst, s)
	return nil
}

// text returns the contents of a fixed-width field up to the first
// NUL byte.
func text(src []byte) string {
	if idx := bytes.IndexByte(src, 0); idx >= 0 {
		return string(src[:idx])
	}
	return string(src)
}

// Lookup finds the record with the given id in a sequence of
// records.
func Lookup[T Record](items []T, id uuid.UUID) (T, bool) {
	for _, item := range items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// HasID returns a predicate matching records by identifier, for use
// with dt.List.RemoveFunc.
func HasID[T Record](id uuid.UUID) func(T) bool {
	return func(item T) bool { return item.RecordID() == id }
}
