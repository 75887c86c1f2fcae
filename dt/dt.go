// Package dt provides a generic linked list whose linking discipline
// (its topology) is chosen when the list is created: singly linked,
// doubly linked, singly circular, or doubly circular.
//
// All operations are synchronous and bounded by the size of the list.
// Lists are not safe for access from multiple concurrent goroutines;
// callers that need shared access should guard the whole list with a
// single mutex at the call site.
package dt

import (
	"fmt"
	"strings"

	"github.com/recordkit/reclist/ers"
)

// Topology describes how the nodes of a list are linked. A list's
// topology is fixed for its whole life.
type Topology uint8

const (
	// Singly links each node to its successor only. The tail's
	// successor is nil.
	Singly Topology = iota
	// Doubly links each node to its successor and predecessor. The
	// head's predecessor and the tail's successor are nil.
	Doubly
	// SinglyCircular links each node to its successor, and the tail
	// back to the head.
	SinglyCircular
	// DoublyCircular links nodes in both directions and closes the
	// ring in both directions.
	DoublyCircular
)

var topologyNames = [...]string{
	Singly:         "singly",
	Doubly:         "doubly",
	SinglyCircular: "singly-circular",
	DoublyCircular: "doubly-circular",
}

// Topologies lists every valid topology, in declaration order.
func Topologies() []Topology { return []Topology{Singly, Doubly, SinglyCircular, DoublyCircular} }

func (t Topology) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
	return topologyNames[t]
}

// Valid reports whether t is one of the four declared topologies.
func (t Topology) Valid() bool { return t <= DoublyCircular }

// Circular reports whether the tail links back to the head.
func (t Topology) Circular() bool { return t == SinglyCircular || t == DoublyCircular }

// Bidirectional reports whether nodes carry predecessor links.
func (t Topology) Bidirectional() bool { return t == Doubly || t == DoublyCircular }

// ParseTopology resolves a topology from its name. Names are case
// insensitive, and "circular" may be spelled as a suffix with either
// a hyphen or an underscore.
func ParseTopology(name string) (Topology, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for idx, n := range topologyNames {
		if n == norm {
			return Topology(idx), nil
		}
	}

	return 0, fmt.Errorf("topology %q: %w", name, ers.ErrInvalidInput)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("topology %d: %w", uint8(t), ers.ErrInvalidInput)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(in []byte) error {
	v, err := ParseTopology(string(in))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
