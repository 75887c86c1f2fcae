package erc

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordkit/reclist/ers"
)

func TestCollector(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		ec := &Collector{}
		assert.False(t, ec.HasErrors())
		assert.Zero(t, ec.Len())
		assert.NoError(t, ec.Resolve())

		ec.Add(nil)
		ec.Check(func() error { return nil })
		ec.When(false, ers.ErrIO)
		assert.NoError(t, ec.Resolve())
	})
	t.Run("Single", func(t *testing.T) {
		ec := &Collector{}
		ec.Add(ers.ErrIO)

		assert.True(t, ec.HasErrors())
		assert.Equal(t, 1, ec.Len())
		assert.Equal(t, error(ers.ErrIO), ec.Resolve())
	})
	t.Run("Many", func(t *testing.T) {
		ec := &Collector{}
		ec.Add(ers.ErrIO)
		ec.When(true, io.ErrShortWrite)
		ec.Check(func() error { return fs.ErrClosed })
		require.Equal(t, 3, ec.Len())

		err := ec.Resolve()
		assert.ErrorIs(t, err, ers.ErrIO)
		assert.ErrorIs(t, err, io.ErrShortWrite)
		assert.ErrorIs(t, err, fs.ErrClosed)
		assert.NotErrorIs(t, err, ers.ErrCorruptData)
		assert.Equal(t, "i/o error; short write; file already closed", err.Error())

		var stack *Stack
		require.True(t, errors.As(err, &stack))
		assert.Equal(t, []error{ers.ErrIO, io.ErrShortWrite, fs.ErrClosed}, stack.Errors())
	})
	t.Run("As", func(t *testing.T) {
		ec := &Collector{}
		ec.Add(ers.ErrIO)
		ec.Add(&fs.PathError{Op: "open", Path: "x.dat", Err: fs.ErrNotExist})

		var perr *fs.PathError
		require.True(t, errors.As(ec.Resolve(), &perr))
		assert.Equal(t, "x.dat", perr.Path)
		assert.ErrorIs(t, ec.Resolve(), fs.ErrNotExist)
	})
}

func TestStack(t *testing.T) {
	empty := &Stack{}
	assert.Equal(t, "empty error", empty.Error())
	assert.Nil(t, empty.Unwrap())
	assert.Empty(t, empty.Errors())

	one := empty.append(ers.ErrNotFound)
	assert.Equal(t, "not found", one.Error())
	assert.Nil(t, one.Unwrap())
}
