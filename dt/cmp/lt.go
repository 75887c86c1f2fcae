// Package cmp provides comparators for sorting linked lists.
//
// A Comparator reports whether a should precede b for the requested
// direction. Comparators must be strict: for equal keys they return
// false in both argument orders, which is what lets the list sort
// keep equal records in their original order.
package cmp

import "time"

// OrderableNative describes all native types which support the <
// operator. To order custom types, use the Orderable interface.
type OrderableNative interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Orderable allows users to define a method on their types which
// implement a method to provide a LessThan operation.
type Orderable[T any] interface{ LessThan(T) bool }

// Comparator reports whether a should precede b. When descending is
// true, larger keys come first.
type Comparator[T any] func(a, b T, descending bool) bool

// Native compares values with the < and > operators.
func Native[T OrderableNative](a, b T, descending bool) bool {
	if descending {
		return a > b
	}
	return a < b
}

// Custom compares types that implement the Orderable interface.
func Custom[T Orderable[T]](a, b T, descending bool) bool {
	if descending {
		return b.LessThan(a)
	}
	return a.LessThan(b)
}

// Time compares time values using the time.Time.Before() method.
func Time(a, b time.Time, descending bool) bool {
	if descending {
		return b.Before(a)
	}
	return a.Before(b)
}

// Key provides a comparator for a non-orderable type by converting
// each value to an orderable sort key.
func Key[T any, S OrderableNative](key func(T) S) Comparator[T] {
	return func(a, b T, descending bool) bool { return Native(key(a), key(b), descending) }
}

// Then orders by primary, and uses secondary only to break ties
// between values that primary considers equal.
func Then[T any](primary, secondary Comparator[T]) Comparator[T] {
	return func(a, b T, descending bool) bool {
		switch {
		case primary(a, b, descending):
			return true
		case primary(b, a, descending):
			return false
		default:
			return secondary(a, b, descending)
		}
	}
}

// Fixed pins a comparator to one direction, ignoring the direction
// requested at sort time. Use it for tie breakers that should always
// run ascending (e.g. by name).
func Fixed[T any](fn Comparator[T], descending bool) Comparator[T] {
	return func(a, b T, _ bool) bool { return fn(a, b, descending) }
}

// Reverse wraps an existing comparator and flips its direction.
func Reverse[T any](fn Comparator[T]) Comparator[T] {
	return func(a, b T, descending bool) bool { return fn(a, b, !descending) }
}
