// Package testt (for test tools), provides a couple of useful helpers
// for common test patterns around lists and record files.
package testt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/recordkit/reclist/dt"
)

// Path returns a path for a file named name inside a per-test
// temporary directory. The directory is removed during the test's
// Cleanup; the file itself is not created.
func Path(t testing.TB, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// Values returns the payloads of the list in traversal order. Empty
// and nil lists produce an empty, non-nil slice.
func Values[T any](l *dt.List[T]) []T { return l.Slice() }

// Intact fails the test immediately if the list does not satisfy the
// structural invariants of its topology.
func Intact[T any](t testing.TB, l *dt.List[T]) {
	t.Helper()
	require.NoError(t, l.Check(), "%s list of %d", l.Topology(), l.Len())
}

// EachTopology runs fn as a subtest once for every topology.
func EachTopology(t *testing.T, fn func(t *testing.T, topology dt.Topology)) {
	t.Helper()
	for _, topology := range dt.Topologies() {
		t.Run(topology.String(), func(t *testing.T) { fn(t, topology) })
	}
}

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}
