package dt

import (
	"fmt"
	"iter"

	"github.com/recordkit/reclist/ers"
)

// List is a generic linked list with a fixed topology. The zero value
// is an empty, singly linked list with no node budget, ready to use.
//
// The list owns its chain of elements; Next/Prev links between
// elements never escape the list's own operations except through the
// read-only Element accessors.
type List[T any] struct {
	head     *Element[T]
	tail     *Element[T]
	size     int
	topology Topology
	capacity int
	release  func(T)
	closed   bool
}

// New returns an empty list with the given topology. New panics with
// ErrUninitializedContainer when the topology is not one of the
// declared values.
func New[T any](topology Topology) *List[T] {
	if !topology.Valid() {
		panic(fmt.Errorf("%w: %s", ers.ErrUninitializedContainer, topology))
	}

	return &List[T]{topology: topology}
}

// FromSlice builds a list of the given topology holding the items in
// order.
func FromSlice[T any](topology Topology, items []T) *List[T] {
	out := New[T](topology)
	for idx := range items {
		out.uncheckedAdd(items[idx])
	}
	return out
}

// Convert copies the payloads of the list, in traversal order, into a
// new list of another topology. The node budget and release hook are
// not copied: both lists would otherwise release the same payloads.
func Convert[T any](l *List[T], topology Topology) *List[T] {
	out := New[T](topology)
	for item := range l.Seq() {
		out.uncheckedAdd(item)
	}
	return out
}

// SetCapacity limits the number of nodes the list may hold. Once the
// budget is exhausted, Add returns ErrOutOfMemory. Zero or negative
// values remove the limit.
func (l *List[T]) SetCapacity(n int) *List[T] { l.capacity = max(n, 0); return l }

// OnRelease registers a function that is called exactly once with
// each payload that Remove, RemoveFunc, Clear, or Destroy takes out of
// the list. Without a hook, payloads are simply dropped.
func (l *List[T]) OnRelease(fn func(T)) *List[T] { l.release = fn; return l }

// Topology returns the linking discipline of the list.
func (l *List[T]) Topology() Topology {
	if l == nil {
		return Singly
	}
	return l.topology
}

// Len returns the length of the list. As the Add/Remove operations
// track the length of the list, this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// Cap returns the node budget of the list, or zero if the list is
// unbounded.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return l.capacity
}

// Closed reports whether the list has been destroyed.
func (l *List[T]) Closed() bool { return l == nil || l.closed }

// Front returns the first element of the list, or nil when empty.
func (l *List[T]) Front() *Element[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Back returns the last element of the list, or nil when empty.
func (l *List[T]) Back() *Element[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Add appends a value to the end of the list and returns the element
// holding it. Add fails with ErrOutOfMemory when the node budget is
// exhausted and with ErrContainerClosed once the list is destroyed; in
// both cases the list is left unchanged.
func (l *List[T]) Add(item T) (*Element[T], error) {
	switch {
	case l == nil:
		return nil, ers.ErrUninitializedContainer
	case l.closed:
		return nil, ers.ErrContainerClosed
	case l.capacity > 0 && l.size >= l.capacity:
		return nil, fmt.Errorf("list holds %d of %d nodes: %w", l.size, l.capacity, ers.ErrOutOfMemory)
	}

	return l.uncheckedAdd(item), nil
}

// Append adds a variadic sequence of items to the end of the
// list. Items are added until the first failure, which is returned.
func (l *List[T]) Append(items ...T) error {
	for idx := range items {
		if _, err := l.Add(items[idx]); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) uncheckedAdd(item T) *Element[T] {
	e := &Element[T]{item: item, list: l}
	l.link(e)
	l.size++
	return e
}

// Get returns the payload at the 0-based index. The second value is
// false when the index falls outside [0, Len()).
func (l *List[T]) Get(index int) (T, bool) {
	e := l.At(index)
	return e.Value(), e != nil
}

// At returns the element at the 0-based index, or nil when the index
// falls outside [0, Len()).
func (l *List[T]) At(index int) *Element[T] {
	if index < 0 || index >= l.Len() {
		return nil
	}

	e := l.head
	for range index {
		e = e.next
	}
	return e
}

// Remove unlinks the element from the list, returning true if the
// operation was successful. Remove returns false when the element is
// nil or belongs to another list.
func (l *List[T]) Remove(e *Element[T]) bool {
	if l == nil || !e.In(l) {
		return false
	}

	if l.topology.Bidirectional() {
		l.unlink(e.prev, e)
		return true
	}

	prev := l.boundaryPrev()
	cur := l.head
	for range l.size {
		if cur == e {
			l.unlink(prev, cur)
			return true
		}
		prev, cur = cur, cur.next
	}

	return false
}

// RemoveFunc removes the first element, in traversal order, whose
// payload matches. The scan visits at most Len() nodes. Returns false
// if nothing matched.
func (l *List[T]) RemoveFunc(match func(T) bool) bool {
	if l == nil || l.size == 0 {
		return false
	}

	prev := l.boundaryPrev()
	cur := l.head
	for range l.size {
		if match(cur.item) {
			l.unlink(prev, cur)
			return true
		}
		prev, cur = cur, cur.next
	}

	return false
}

// RemoveValue removes the first element whose payload is equal to
// value.
func RemoveValue[T comparable](l *List[T], value T) bool {
	return l.RemoveFunc(func(item T) bool { return item == value })
}

// Clear removes every element, releasing each payload in traversal
// order. The list remains usable afterwards.
func (l *List[T]) Clear() {
	if l == nil || l.size == 0 {
		return
	}

	// break the ring so the walk below ends at nil.
	l.tail.next = nil

	for e := l.head; e != nil; {
		next := e.next
		item := e.item
		e.detach()
		e.item = l.zero()
		l.releaseItem(item)
		e = next
	}

	l.head, l.tail, l.size = nil, nil, 0
}

// Destroy clears the list and closes it: subsequent Add calls fail
// with ErrContainerClosed. Destroy is safe to call on nil or already
// destroyed lists.
func (l *List[T]) Destroy() {
	if l == nil || l.closed {
		return
	}

	l.Clear()
	l.closed = true
	l.release = nil
}

// Visit calls fn with each payload in traversal order.
func (l *List[T]) Visit(fn func(T)) {
	for item := range l.Seq() {
		fn(item)
	}
}

// Elements returns an iterator over the elements of the list, which
// visits each node exactly once regardless of topology. The iterator
// must not be used to remove elements other than the current one.
func (l *List[T]) Elements() iter.Seq[*Element[T]] {
	return func(yield func(*Element[T]) bool) {
		if l == nil {
			return
		}

		e := l.head
		for range l.size {
			// the successor is read first so yield may remove e.
			next := e.next
			if !yield(e) {
				return
			}
			e = next
		}
	}
}

// Seq returns a native go iterator function for the payloads in the
// list, front to back.
func (l *List[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range l.Elements() {
			if !yield(e.item) {
				return
			}
		}
	}
}

// Reverse returns an iterator over the payloads from back to
// front. Bidirectional lists follow predecessor links; the others are
// walked forward once into a buffer first.
func (l *List[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Len() == 0 {
			return
		}

		if l.topology.Bidirectional() {
			e := l.tail
			for range l.size {
				if !yield(e.item) {
					return
				}
				e = e.prev
			}
			return
		}

		items := l.Slice()
		for idx := len(items) - 1; idx >= 0; idx-- {
			if !yield(items[idx]) {
				return
			}
		}
	}
}

// Slice exports the contents of the list to a slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	for item := range l.Seq() {
		out = append(out, item)
	}
	return out
}

// boundaryPrev is the predecessor of the head: the tail for circular
// lists, nil otherwise.
func (l *List[T]) boundaryPrev() *Element[T] {
	if l.topology.Circular() {
		return l.tail
	}
	return nil
}

func (l *List[T]) releaseItem(item T) {
	if l.release != nil {
		l.release(item)
	}
}

func (*List[T]) zero() (o T) { return }
