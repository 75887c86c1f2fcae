package dt

// link appends a new, unattached element to the end of the list,
// dispatching on the list's topology. The caller tracks the size.
func (l *List[T]) link(e *Element[T]) {
	switch l.topology {
	case Singly:
		linkSingly(l, e)
	case Doubly:
		linkDoubly(l, e)
	case SinglyCircular:
		linkSinglyCircular(l, e)
	case DoublyCircular:
		linkDoublyCircular(l, e)
	}
}

func linkSingly[T any](l *List[T], e *Element[T]) {
	if l.tail == nil {
		l.head, l.tail = e, e
		return
	}

	l.tail.next = e
	l.tail = e
}

func linkDoubly[T any](l *List[T], e *Element[T]) {
	if l.tail == nil {
		l.head, l.tail = e, e
		return
	}

	e.prev = l.tail
	l.tail.next = e
	l.tail = e
}

func linkSinglyCircular[T any](l *List[T], e *Element[T]) {
	if l.tail == nil {
		l.head, l.tail = e, e
		e.next = e
		return
	}

	e.next = l.head
	l.tail.next = e
	l.tail = e
}

func linkDoublyCircular[T any](l *List[T], e *Element[T]) {
	if l.tail == nil {
		l.head, l.tail = e, e
		e.next, e.prev = e, e
		return
	}

	e.next = l.head
	e.prev = l.tail
	l.tail.next = e
	l.head.prev = e
	l.tail = e
}

// unlink bypasses e, whose predecessor in traversal order is prev
// (the tail, when e is the head of a circular list), and repairs the
// boundaries. Removing the last node empties the list rather than
// leaving a self-referencing ring behind.
func (l *List[T]) unlink(prev, e *Element[T]) {
	if l.size == 1 {
		l.head, l.tail = nil, nil
	} else {
		next := e.next
		if e == l.head {
			l.head = next
		}
		if e == l.tail {
			l.tail = prev
		}
		if prev != nil {
			prev.next = next
		}
		if next != nil && l.topology.Bidirectional() {
			next.prev = prev
		}
	}

	l.size--
	item := e.item
	e.detach()
	e.item = l.zero()
	l.releaseItem(item)
}
