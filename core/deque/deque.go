// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import "reflect"

// Deque is a double-ended queue. Elements can be added or removed at
// either end in constant time.
type Deque[T any] interface {
	// AddFirst inserts the value at the front of the deque. An
	// errors.InvalidArgument error is returned if the value is absent.
	AddFirst(value T) error

	// AddLast inserts the value at the back of the deque. An
	// errors.InvalidArgument error is returned if the value is absent.
	AddLast(value T) error

	// RemoveFirst removes and returns the value at the front of the deque.
	// An errors.EmptyCollection error is returned if the deque is empty.
	RemoveFirst() (T, error)

	// RemoveLast removes and returns the value at the back of the deque.
	// An errors.EmptyCollection error is returned if the deque is empty.
	RemoveLast() (T, error)

	// GetFirst returns the value at the front of the deque without
	// removing it.
	GetFirst() (T, error)

	// GetLast returns the value at the back of the deque without
	// removing it.
	GetLast() (T, error)

	// Size returns the number of values held by the deque.
	Size() int
}

// IsAbsent reports whether the value is the nil equivalent for its type.
// Only nil interfaces and nil pointers, maps, slices, channels and
// functions are absent; the zero value of any other kind is a valid
// element. Values of a type that cannot be nil are never inspected.
func IsAbsent[T any](value T) bool {
	kind := reflect.TypeFor[T]().Kind()
	if kind != reflect.Interface && !nillable(kind) {
		return false
	}
	v := reflect.ValueOf(any(value))
	if !v.IsValid() {
		return true
	}
	// A typed nil held in an interface is still nil.
	return nillable(v.Kind()) && v.IsNil()
}

func nillable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
