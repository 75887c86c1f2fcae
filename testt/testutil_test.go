package testt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordkit/reclist/dt"
)

func TestTools(t *testing.T) {
	t.Run("Path", func(t *testing.T) {
		path := Path(t, "records.dat")
		assert.Equal(t, "records.dat", filepath.Base(path))

		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		info, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
	t.Run("Values", func(t *testing.T) {
		assert.Equal(t, []int{}, Values[int](nil))
		assert.Equal(t, []int{1, 2, 3}, Values(dt.FromSlice(dt.DoublyCircular, []int{1, 2, 3})))
	})
	t.Run("EachTopology", func(t *testing.T) {
		seen := map[dt.Topology]bool{}
		EachTopology(t, func(t *testing.T, topology dt.Topology) {
			seen[topology] = true
			Intact(t, dt.FromSlice(topology, []string{"a", "b"}))
		})
		assert.Len(t, seen, 4)
	})
}
