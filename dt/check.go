package dt

import (
	"fmt"

	"github.com/recordkit/reclist/ers"
)

// Check walks the list and verifies the structural invariants of its
// topology: the size matches the reachable nodes, the boundaries are
// terminated (or, for circular lists, closed) correctly, and
// predecessor links mirror successor links. Any violation is reported
// as an error wrapping ErrInvariantViolation.
func (l *List[T]) Check() error {
	if l == nil {
		return nil
	}

	if (l.size == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		return l.violation("size %d with head set=%t tail set=%t", l.size, l.head != nil, l.tail != nil)
	}
	if l.size == 0 {
		return nil
	}

	circular := l.topology.Circular()
	bidi := l.topology.Bidirectional()

	switch {
	case circular && l.tail.next != l.head:
		return l.violation("tail does not link back to head")
	case !circular && l.tail.next != nil:
		return l.violation("tail has a successor")
	case bidi && circular && l.head.prev != l.tail:
		return l.violation("head does not link back to tail")
	case bidi && !circular && l.head.prev != nil:
		return l.violation("head has a predecessor")
	}

	var prev *Element[T]
	if circular {
		prev = l.tail
	}

	e := l.head
	for idx := range l.size {
		switch {
		case e == nil:
			return l.violation("chain ends after %d of %d nodes", idx, l.size)
		case e.list != l:
			return l.violation("node %d belongs to another list", idx)
		case bidi && e.prev != prev:
			return l.violation("node %d has a stale predecessor", idx)
		case !bidi && e.prev != nil:
			return l.violation("node %d has a predecessor in a singly linked list", idx)
		case idx == l.size-1 && e != l.tail:
			return l.violation("node %d is not the tail", idx)
		}
		prev, e = e, e.next
	}

	if circular && e != l.head {
		return l.violation("ring does not close after %d nodes", l.size)
	}
	if !circular && e != nil {
		return l.violation("chain continues past %d nodes", l.size)
	}

	return nil
}

func (l *List[T]) violation(tmpl string, args ...any) error {
	return fmt.Errorf("%s list: %s: %w", l.topology, fmt.Sprintf(tmpl, args...), ers.ErrInvariantViolation)
}
