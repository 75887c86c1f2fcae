package recfile

import (
	"fmt"
	"strings"

	"github.com/recordkit/reclist/ers"
)

// Format selects how records are framed in a file.
type Format uint8

const (
	// Counted prefixes the records with a little-endian int32
	// count. This is the canonical format.
	Counted Format = iota
	// Stream writes records back-to-back, and readers consume
	// records until end of file.
	Stream
)

// HeaderSize is the length of the Counted format's count prefix.
const HeaderSize = 4

// MaxRecords bounds the count a Counted header may declare.
const MaxRecords = 1<<31 - 1

func (f Format) String() string {
	switch f {
	case Counted:
		return "counted"
	case Stream:
		return "stream"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat resolves a format from its name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "counted", "":
		return Counted, nil
	case "stream":
		return Stream, nil
	default:
		return 0, fmt.Errorf("record format %q: %w", name, ers.ErrInvalidInput)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f > Stream {
		return nil, fmt.Errorf("record format %d: %w", uint8(f), ers.ErrInvalidInput)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(in []byte) error {
	v, err := ParseFormat(string(in))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
