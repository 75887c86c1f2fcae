package dt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordkit/reclist/ers"
)

func chain[T any](head *Element[T], limit int) []T {
	var out []T
	for e := head; e != nil && len(out) < limit; e = e.next {
		out = append(out, e.item)
	}
	return out
}

func TestLinkers(t *testing.T) {
	attach := func(l *List[string], fn func(*List[string], *Element[string]), item string) *Element[string] {
		e := &Element[string]{item: item, list: l}
		fn(l, e)
		l.size++
		return e
	}

	t.Run("Singly", func(t *testing.T) {
		l := &List[string]{topology: Singly}
		a := attach(l, linkSingly[string], "a")
		assert.Same(t, a, l.head)
		assert.Same(t, a, l.tail)
		assert.Nil(t, a.next)

		b := attach(l, linkSingly[string], "b")
		assert.Same(t, b, a.next)
		assert.Same(t, b, l.tail)
		assert.Nil(t, b.next)
		assert.Nil(t, b.prev)
		assert.NoError(t, l.Check())
	})
	t.Run("Doubly", func(t *testing.T) {
		l := &List[string]{topology: Doubly}
		a := attach(l, linkDoubly[string], "a")
		assert.Nil(t, a.prev)

		b := attach(l, linkDoubly[string], "b")
		assert.Same(t, a, b.prev)
		assert.Same(t, b, a.next)
		assert.Nil(t, b.next)
		assert.NoError(t, l.Check())
	})
	t.Run("SinglyCircular", func(t *testing.T) {
		l := &List[string]{topology: SinglyCircular}
		a := attach(l, linkSinglyCircular[string], "a")
		assert.Same(t, a, a.next)

		b := attach(l, linkSinglyCircular[string], "b")
		c := attach(l, linkSinglyCircular[string], "c")
		assert.Same(t, b, a.next)
		assert.Same(t, c, b.next)
		assert.Same(t, a, c.next)
		assert.NoError(t, l.Check())
	})
	t.Run("DoublyCircular", func(t *testing.T) {
		l := &List[string]{topology: DoublyCircular}
		a := attach(l, linkDoublyCircular[string], "a")
		assert.Same(t, a, a.next)
		assert.Same(t, a, a.prev)

		b := attach(l, linkDoublyCircular[string], "b")
		assert.Same(t, b, a.next)
		assert.Same(t, b, a.prev)
		assert.Same(t, a, b.next)
		assert.Same(t, a, b.prev)
		assert.NoError(t, l.Check())
	})
}

func TestCheck(t *testing.T) {
	t.Run("SizeMismatch", func(t *testing.T) {
		l := FromSlice(Doubly, []int{1, 2, 3})
		l.size = 4
		assert.ErrorIs(t, l.Check(), ers.ErrInvariantViolation)
	})
	t.Run("OpenRing", func(t *testing.T) {
		l := FromSlice(SinglyCircular, []int{1, 2, 3})
		l.tail.next = nil
		assert.ErrorIs(t, l.Check(), ers.ErrInvariantViolation)
	})
	t.Run("ClosedLine", func(t *testing.T) {
		l := FromSlice(Singly, []int{1, 2})
		l.tail.next = l.head
		assert.ErrorIs(t, l.Check(), ers.ErrInvariantViolation)
	})
	t.Run("StalePrev", func(t *testing.T) {
		l := FromSlice(DoublyCircular, []int{1, 2, 3})
		l.head.next.prev = l.tail
		assert.ErrorIs(t, l.Check(), ers.ErrInvariantViolation)
	})
	t.Run("HeadPrev", func(t *testing.T) {
		l := FromSlice(Doubly, []int{1, 2})
		l.head.prev = l.tail
		assert.ErrorIs(t, l.Check(), ers.ErrInvariantViolation)
	})
	t.Run("ForeignNode", func(t *testing.T) {
		l := FromSlice(Singly, []int{1, 2})
		l.head.list = nil
		assert.ErrorIs(t, l.Check(), ers.ErrInvariantViolation)
	})
	t.Run("EmptyWithHead", func(t *testing.T) {
		l := FromSlice(Singly, []int{1})
		l.size = 0
		err := l.Check()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "singly list")
	})
}

func TestMergeParts(t *testing.T) {
	less := func(a, b *Element[int]) bool { return a.item < b.item }
	build := func(items ...int) *Element[int] {
		l := FromSlice(Singly, items)
		return l.head
	}

	t.Run("SplitEven", func(t *testing.T) {
		head := build(1, 2, 3, 4)
		right := split(head)
		assert.Equal(t, []int{1, 2}, chain(head, 10))
		assert.Equal(t, []int{3, 4}, chain(right, 10))
	})
	t.Run("SplitOdd", func(t *testing.T) {
		head := build(1, 2, 3)
		right := split(head)
		assert.Equal(t, []int{1, 2}, chain(head, 10))
		assert.Equal(t, []int{3}, chain(right, 10))
	})
	t.Run("SplitPair", func(t *testing.T) {
		head := build(1, 2)
		right := split(head)
		assert.Equal(t, []int{1}, chain(head, 10))
		assert.Equal(t, []int{2}, chain(right, 10))
	})
	t.Run("Merge", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, chain(merge(build(1, 3, 5), build(2, 4), less), 10))
		assert.Equal(t, []int{1, 2}, chain(merge(nil, build(1, 2), less), 10))
		assert.Equal(t, []int{1, 2}, chain(merge(build(1, 2), nil, less), 10))
	})
	t.Run("MergePrefersLeft", func(t *testing.T) {
		left := build(1)
		right := build(1)
		out := merge(left, right, less)
		assert.Same(t, left, out)
		assert.Same(t, right, out.next)
	})
}
