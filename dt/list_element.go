package dt

import "fmt"

// Element is a node of a List. Elements are created by List.Add and
// are only valid while they remain members of their list.
//
// Next and Prev expose the raw links: on circular lists the tail's
// Next is the head, so C-style loops over elements must be bounded by
// the list's length. Use List.Seq or List.Elements to visit every node
// exactly once regardless of topology.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	list *List[T]
	item T
}

// Value accesses the element's value.
func (e *Element[T]) Value() (out T) {
	if e != nil {
		out = e.item
	}
	return
}

// Set changes the value of an item in place. Returns false if the
// element is nil or no longer belongs to a list.
func (e *Element[T]) Set(v T) bool {
	if !e.Ok() {
		return false
	}

	e.item = v
	return true
}

// Next returns the successor of the element, or nil.
func (e *Element[T]) Next() *Element[T] {
	if e == nil {
		return nil
	}
	return e.next
}

// Prev returns the predecessor of the element. This is always nil
// for elements of singly linked and singly circular lists.
func (e *Element[T]) Prev() *Element[T] {
	if e == nil {
		return nil
	}
	return e.prev
}

// Ok reports whether the element is non-nil and attached to a list.
func (e *Element[T]) Ok() bool { return e != nil && e.list != nil }

// In checks to see if an element is in the specified list. Because
// elements hold a pointer to their list, this is an O(1) operation.
func (e *Element[T]) In(l *List[T]) bool { return e != nil && l != nil && e.list == l }

// String returns the string form of the value of the element.
func (e *Element[T]) String() string { return fmt.Sprint(e.Value()) }

func (e *Element[T]) detach() {
	e.next = nil
	e.prev = nil
	e.list = nil
}
