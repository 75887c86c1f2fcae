// Package recfile persists the payloads of a list to a file as a flat
// sequence of fixed-size binary records, and rebuilds lists of any
// topology from such files. Files never carry pointers or topology:
// a file saved from a doubly circular list can be loaded as a singly
// linked one.
//
// The canonical Counted format is a little-endian int32 record count
// followed by that many records. The Stream format writes records
// back-to-back and is read until end of file.
package recfile

import (
	"encoding/binary"
	"fmt"

	"github.com/recordkit/reclist/ers"
)

// Codec converts payloads to and from their fixed-size on-disk
// representation. Encode is given a zeroed buffer of exactly Size()
// bytes; Decode is given exactly Size() bytes.
type Codec[T any] interface {
	Size() int
	Encode(buf []byte, item T) error
	Decode(buf []byte) (T, error)
}

// BinaryCodec encodes fixed-layout structs (numbers, bools, and arrays
// or structs of them) field by field in little-endian byte order, with
// no padding.
type BinaryCodec[T any] struct {
	size int
}

// NewBinaryCodec returns a codec for T, or an error wrapping
// ErrInvalidInput when T has no fixed size (e.g. it contains strings,
// slices, maps, or pointers).
func NewBinaryCodec[T any]() (BinaryCodec[T], error) {
	var zero T
	size := binary.Size(zero)
	if size <= 0 {
		return BinaryCodec[T]{}, fmt.Errorf("%T has no fixed binary size: %w", zero, ers.ErrInvalidInput)
	}
	return BinaryCodec[T]{size: size}, nil
}

// MustBinaryCodec is NewBinaryCodec for package-level codecs of types
// known to be fixed-size; it panics otherwise.
func MustBinaryCodec[T any]() BinaryCodec[T] {
	codec, err := NewBinaryCodec[T]()
	if err != nil {
		panic(err)
	}
	return codec
}

// Size returns the encoded size of one record.
func (c BinaryCodec[T]) Size() int { return c.size }

// Encode writes the record into buf.
func (c BinaryCodec[T]) Encode(buf []byte, item T) error {
	n, err := binary.Encode(buf, binary.LittleEndian, item)
	switch {
	case err != nil:
		return fmt.Errorf("encode %T: %w", item, err)
	case n != c.size:
		return fmt.Errorf("encode %T: wrote %d of %d bytes: %w", item, n, c.size, ers.ErrIO)
	}
	return nil
}

// Decode reads one record from buf.
func (c BinaryCodec[T]) Decode(buf []byte) (out T, err error) {
	if len(buf) < c.size {
		return out, fmt.Errorf("decode %T: %d of %d bytes: %w", out, len(buf), c.size, ers.ErrCorruptData)
	}
	if _, err = binary.Decode(buf[:c.size], binary.LittleEndian, &out); err != nil {
		return out, fmt.Errorf("decode %T: %w: %w", out, ers.ErrCorruptData, err)
	}
	return out, nil
}
