package dt

import "github.com/recordkit/reclist/dt/cmp"

// Sort reorders the elements of the list in place, so that for every
// adjacent pair neither fn(next, prev, descending) holds. The sort is
// a stable top-down merge sort over the existing chain: elements and
// payloads are not reallocated, elements with equal keys keep their
// relative order, and sorting an already sorted list leaves it
// unchanged.
//
// Circular lists are opened for the duration of the sort and closed
// again afterwards.
func (l *List[T]) Sort(fn cmp.Comparator[T], descending bool) {
	if l.Len() < 2 {
		return
	}

	before := func(a, b *Element[T]) bool { return fn(a.item, b.item, descending) }

	l.tail.next = nil
	l.head = mergeSort(l.head, before)

	var prev *Element[T]
	bidi := l.topology.Bidirectional()
	for e := l.head; e != nil; e = e.next {
		if bidi {
			e.prev = prev
		}
		prev = e
	}
	l.tail = prev

	if l.topology.Circular() {
		l.tail.next = l.head
		if bidi {
			l.head.prev = l.tail
		}
	}
}

// IsSorted reports whether the list is already in the order Sort
// would produce.
func (l *List[T]) IsSorted(fn cmp.Comparator[T], descending bool) bool {
	var prev *Element[T]
	for e := range l.Elements() {
		if prev != nil && fn(e.item, prev.item, descending) {
			return false
		}
		prev = e
	}
	return true
}

// mergeSort sorts the nil-terminated chain starting at head, using
// only next links, and returns the new head.
func mergeSort[T any](head *Element[T], before func(a, b *Element[T]) bool) *Element[T] {
	if head == nil || head.next == nil {
		return head
	}

	right := split(head)
	return merge(mergeSort(head, before), mergeSort(right, before), before)
}

// split cuts the chain at its midpoint and returns the head of the
// second half. The first half keeps the extra node for odd lengths.
func split[T any](head *Element[T]) *Element[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right := slow.next
	slow.next = nil
	return right
}

// merge interleaves two sorted chains. The right element is only
// taken when it strictly precedes the left one, so ties resolve to
// the left half.
func merge[T any](left, right *Element[T], before func(a, b *Element[T]) bool) *Element[T] {
	var head, tail *Element[T]
	for left != nil && right != nil {
		var next *Element[T]
		if before(right, left) && !before(left, right) {
			next, right = right, right.next
		} else {
			next, left = left, left.next
		}

		if tail == nil {
			head = next
		} else {
			tail.next = next
		}
		tail = next
	}

	rest := left
	if rest == nil {
		rest = right
	}

	if tail == nil {
		return rest
	}

	tail.next = rest
	return head
}
