package catalog_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/recordkit/reclist/catalog"
	"github.com/recordkit/reclist/dt"
	"github.com/recordkit/reclist/ers"
	"github.com/recordkit/reclist/recfile"
	"github.com/recordkit/reclist/testt"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

type entry struct {
	Key   int64
	Value float32
}

var codec = recfile.MustBinaryCodec[entry]()

func TestCatalog(t *testing.T) {
	t.Run("CreateGetDrop", func(t *testing.T) {
		c := catalog.New(dt.Doubly, codec)
		list, err := c.Create("active")
		require.NoError(t, err)
		assert.Equal(t, dt.Doubly, list.Topology())

		got, err := c.Get("active")
		require.NoError(t, err)
		assert.Same(t, list, got)

		_, err = c.Create("active")
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
		_, err = c.Create("")
		assert.ErrorIs(t, err, ers.ErrInvalidInput)

		require.NoError(t, c.Drop("active"))
		assert.True(t, list.Closed())
		assert.Equal(t, 0, c.Len())

		_, err = c.Get("active")
		assert.ErrorIs(t, err, ers.ErrNotFound)
		assert.ErrorIs(t, c.Drop("active"), ers.ErrNotFound)
	})
	t.Run("Limit", func(t *testing.T) {
		c := catalog.New(dt.Singly, codec)
		for idx := range catalog.MaxLists {
			_, err := c.Create(fmt.Sprint("list-", idx))
			require.NoError(t, err)
		}
		_, err := c.Create("one-too-many")
		assert.ErrorIs(t, err, ers.ErrLimitExceeded)
		assert.Equal(t, catalog.MaxLists, c.Len())
		assert.Equal(t, "list-0", c.Names()[0])

		require.NoError(t, c.Drop("list-3"))
		_, err = c.Create("one-too-many")
		assert.NoError(t, err)
		assert.Equal(t, "one-too-many", c.Names()[catalog.MaxLists-1])
	})
	t.Run("SaveLoad", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		c := catalog.New(dt.SinglyCircular, codec, catalog.WithLogger(zap.New(core)), catalog.WithFormat(recfile.Stream))
		path := testt.Path(t, "entries.dat")

		list, err := c.Create("a")
		require.NoError(t, err)
		require.NoError(t, list.Append(entry{1, 1.5}, entry{2, 2.5}))

		n, err := c.Save("a", path)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(2*codec.Size()), info.Size())

		loaded, err := c.Load("b", path)
		require.NoError(t, err)
		assert.Equal(t, []entry{{1, 1.5}, {2, 2.5}}, testt.Values(loaded))
		assert.Equal(t, dt.SinglyCircular, loaded.Topology())
		assert.Equal(t, []string{"a", "b"}, c.Names())

		saved := logs.FilterMessage("saved list").All()
		require.Len(t, saved, 1)
		assert.Equal(t, int64(2), saved[0].ContextMap()["records"])
		assert.Equal(t, "singly-circular", saved[0].ContextMap()["topology"])
		assert.Equal(t, 1, logs.FilterMessage("loaded list").Len())
	})
	t.Run("LoadReplaces", func(t *testing.T) {
		c := catalog.New(dt.Doubly, codec)
		path := testt.Path(t, "entries.dat")

		list, err := c.Create("a")
		require.NoError(t, err)
		require.NoError(t, list.Append(entry{1, 1}))
		_, err = c.Save("a", path)
		require.NoError(t, err)
		require.NoError(t, list.Append(entry{2, 2}))

		reloaded, err := c.Load("a", path)
		require.NoError(t, err)
		assert.Equal(t, 1, reloaded.Len())
		assert.True(t, list.Closed())
		assert.Equal(t, 1, c.Len())

		got, err := c.Get("a")
		require.NoError(t, err)
		assert.Same(t, reloaded, got)
	})
	t.Run("FailedLoadLeavesCatalog", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		c := catalog.New(dt.Doubly, codec, catalog.WithLogger(zap.New(core)))
		path := testt.Path(t, "bad.dat")
		require.NoError(t, os.WriteFile(path, []byte{3, 0, 0, 0, 1, 2}, 0o644))

		list, err := c.Create("a")
		require.NoError(t, err)
		require.NoError(t, list.Append(entry{9, 9}))

		_, err = c.Load("a", path)
		assert.ErrorIs(t, err, ers.ErrCorruptData)
		got, err := c.Get("a")
		require.NoError(t, err)
		assert.Same(t, list, got)
		assert.Equal(t, 1, got.Len())

		_, err = c.Load("b", path)
		assert.ErrorIs(t, err, ers.ErrCorruptData)
		assert.Equal(t, []string{"a"}, c.Names())
		assert.Equal(t, 2, logs.FilterMessage("load failed").Len())
	})
	t.Run("Capacity", func(t *testing.T) {
		c := catalog.New(dt.Doubly, codec, catalog.WithCapacity(1))
		path := testt.Path(t, "entries.dat")

		_, err := recfile.Save(path, dt.FromSlice(dt.Singly, []entry{{1, 1}, {2, 2}}), codec, recfile.Counted)
		require.NoError(t, err)

		_, err = c.Load("a", path)
		assert.ErrorIs(t, err, ers.ErrOutOfMemory)

		list, err := c.Create("a")
		require.NoError(t, err)
		assert.Equal(t, 1, list.Cap())
	})
	t.Run("Open", func(t *testing.T) {
		c := catalog.New(dt.Doubly, codec)
		path := testt.Path(t, "entries.dat")

		list, err := c.Open("a", path)
		require.NoError(t, err)
		assert.Equal(t, 0, list.Len())

		again, err := c.Open("a", path)
		require.NoError(t, err)
		assert.Same(t, list, again)

		require.NoError(t, list.Append(entry{4, 4}))
		_, err = c.Save("a", path)
		require.NoError(t, err)

		reopened, err := c.Open("a", path)
		require.NoError(t, err)
		assert.Equal(t, []entry{{4, 4}}, testt.Values(reopened))
	})
	t.Run("SaveUnknown", func(t *testing.T) {
		c := catalog.New(dt.Doubly, codec)
		_, err := c.Save("nope", testt.Path(t, "x.dat"))
		assert.ErrorIs(t, err, ers.ErrNotFound)
	})
}
