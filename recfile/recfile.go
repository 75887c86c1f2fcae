package recfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/recordkit/reclist/dt"
	"github.com/recordkit/reclist/erc"
	"github.com/recordkit/reclist/ers"
)

// Save writes the payloads of the list, in traversal order, to the
// file at path, creating the parent directory if needed and replacing
// any existing file. It returns the number of records that reached
// the file. Any failure to write or close the file wraps ErrIO; the
// file then holds a truncated but otherwise intact prefix.
func Save[T any](path string, l *dt.List[T], codec Codec[T], format Format) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create directory for %s: %w: %w", path, ers.ErrIO, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w: %w", path, ers.ErrIO, err)
	}

	ec := &erc.Collector{}
	count, err := Write(f, l, codec, format)
	ec.Add(err)
	if err := f.Close(); err != nil {
		ec.Add(fmt.Errorf("close %s: %w: %w", path, ers.ErrIO, err))
	}

	return count, ec.Resolve()
}

// Load builds a new list of the given topology from the file at
// path. A missing file is reported as an error wrapping both
// ErrNotFound and fs.ErrNotExist; a file that ends before its last
// record wraps ErrCorruptData. No list is returned on failure.
func Load[T any](path string, topology dt.Topology, codec Codec[T], format Format) (*dt.List[T], error) {
	out := dt.New[T](topology)
	if _, err := LoadInto(path, out, codec, format); err != nil {
		out.Destroy()
		return nil, err
	}
	return out, nil
}

// LoadInto appends the records stored at path to an empty list, which
// lets callers choose the node budget and release hook of the
// result. On failure the list is cleared again.
func LoadInto[T any](path string, into *dt.List[T], codec Codec[T], format Format) (int, error) {
	if into.Len() != 0 {
		return 0, fmt.Errorf("load %s into list of %d: %w", path, into.Len(), ers.ErrInvalidInput)
	}

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return 0, fmt.Errorf("open %s: %w: %w", path, ers.ErrNotFound, err)
	case err != nil:
		return 0, fmt.Errorf("open %s: %w: %w", path, ers.ErrIO, err)
	}
	defer f.Close()

	count, err := Read(f, into, codec, format)
	if err != nil {
		into.Clear()
		return 0, fmt.Errorf("load %s: %w", path, err)
	}

	return count, nil
}

// Write encodes the payloads of the list to w in the given format, and
// returns the number of records that were fully written to w.
func Write[T any](w io.Writer, l *dt.List[T], codec Codec[T], format Format) (int, error) {
	size := codec.Size()
	switch {
	case size <= 0:
		return 0, fmt.Errorf("record size %d: %w", size, ers.ErrInvalidInput)
	case format > Stream:
		return 0, fmt.Errorf("record format %s: %w", format, ers.ErrInvalidInput)
	case l.Len() > MaxRecords:
		return 0, fmt.Errorf("%d records: %w", l.Len(), ers.ErrLimitExceeded)
	}

	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	written := func() int {
		body := cw.n
		if format == Counted {
			body -= HeaderSize
		}
		return int(max(body, 0) / int64(size))
	}

	if format == Counted {
		var header [HeaderSize]byte
		binary.LittleEndian.PutUint32(header[:], uint32(l.Len()))
		if _, err := bw.Write(header[:]); err != nil {
			return 0, fmt.Errorf("write header: %w: %w", ers.ErrIO, err)
		}
	}

	buf := make([]byte, size)
	idx := 0
	for item := range l.Seq() {
		clear(buf)
		if err := codec.Encode(buf, item); err != nil {
			_ = bw.Flush()
			return written(), fmt.Errorf("record %d: %w", idx, err)
		}
		if _, err := bw.Write(buf); err != nil {
			return written(), fmt.Errorf("write record %d: %w: %w", idx, ers.ErrIO, err)
		}
		idx++
	}

	if err := bw.Flush(); err != nil {
		return written(), fmt.Errorf("flush after %d records: %w: %w", idx, ers.ErrIO, err)
	}

	return written(), nil
}

// Read decodes records from r and appends them to the list, returning
// the number of records added. An empty input is an empty collection
// in both formats. Input that ends inside the header or a record, or
// a negative count, wraps ErrCorruptData. When the list's node budget
// cannot hold the declared count, Read fails with ErrOutOfMemory
// before reading any record.
func Read[T any](r io.Reader, into *dt.List[T], codec Codec[T], format Format) (int, error) {
	size := codec.Size()
	switch {
	case size <= 0:
		return 0, fmt.Errorf("record size %d: %w", size, ers.ErrInvalidInput)
	case into == nil:
		return 0, ers.ErrUninitializedContainer
	}

	br := bufio.NewReader(r)
	switch format {
	case Counted:
		return readCounted(br, into, codec)
	case Stream:
		return readStream(br, into, codec)
	default:
		return 0, fmt.Errorf("record format %s: %w", format, ers.ErrInvalidInput)
	}
}

func readCounted[T any](r io.Reader, into *dt.List[T], codec Codec[T]) (int, error) {
	var header [HeaderSize]byte
	switch _, err := io.ReadFull(r, header[:]); {
	case errors.Is(err, io.EOF):
		return 0, nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return 0, fmt.Errorf("short header: %w", ers.ErrCorruptData)
	case err != nil:
		return 0, fmt.Errorf("read header: %w: %w", ers.ErrIO, err)
	}

	declared := int32(binary.LittleEndian.Uint32(header[:]))
	if declared < 0 {
		return 0, fmt.Errorf("negative record count %d: %w", declared, ers.ErrCorruptData)
	}

	count := int(declared)
	if limit := into.Cap(); limit > 0 && into.Len()+count > limit {
		return 0, fmt.Errorf("%d records exceed a budget of %d: %w", count, limit, ers.ErrOutOfMemory)
	}

	buf := make([]byte, codec.Size())
	for idx := range count {
		switch _, err := io.ReadFull(r, buf); {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return idx, fmt.Errorf("record %d of %d is truncated: %w", idx, count, ers.ErrCorruptData)
		case err != nil:
			return idx, fmt.Errorf("read record %d: %w: %w", idx, ers.ErrIO, err)
		}

		if err := add(into, codec, buf, idx); err != nil {
			return idx, err
		}
	}

	return count, nil
}

func readStream[T any](r io.Reader, into *dt.List[T], codec Codec[T]) (int, error) {
	buf := make([]byte, codec.Size())
	for idx := 0; ; idx++ {
		switch _, err := io.ReadFull(r, buf); {
		case errors.Is(err, io.EOF):
			return idx, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return idx, fmt.Errorf("trailing partial record after %d records: %w", idx, ers.ErrCorruptData)
		case err != nil:
			return idx, fmt.Errorf("read record %d: %w: %w", idx, ers.ErrIO, err)
		}

		if err := add(into, codec, buf, idx); err != nil {
			return idx, err
		}
	}
}

func add[T any](into *dt.List[T], codec Codec[T], buf []byte, idx int) error {
	item, err := codec.Decode(buf)
	if err != nil {
		return fmt.Errorf("record %d: %w", idx, err)
	}
	if _, err := into.Add(item); err != nil {
		return fmt.Errorf("record %d: %w", idx, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
