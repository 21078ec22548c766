// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package arraydeque provides a deque.Deque backed by a growable circular
// buffer. Growth doubles the capacity and realigns the elements to the
// start of the new storage.
package arraydeque

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/juju/deque/core/deque"
	dequeerrors "github.com/juju/deque/core/deque/errors"
)

var logger = loggo.GetLogger("juju.deque.arraydeque")

// DefaultInitialCapacity is the number of slots allocated by New.
const DefaultInitialCapacity = 11

// Config holds the tunables of a Deque.
type Config struct {
	// InitialCapacity is the number of slots in the backing storage before
	// the first growth.
	InitialCapacity int
}

// Validate returns an error if the config cannot be used to create a Deque.
func (c Config) Validate() error {
	if c.InitialCapacity <= 0 {
		return errors.NotValidf("initial capacity %d", c.InitialCapacity)
	}
	return nil
}

// Deque is a double-ended queue backed by a circular buffer. The live
// elements occupy the slots front, front+1, ..., front+size-1, each taken
// modulo the capacity; every other slot holds the zero value.
//
// When an insertion finds the buffer full, the storage is replaced by one
// of twice the capacity holding the elements in logical order from index 0.
//
// The zero value is an empty deque ready for use; its storage is allocated
// with DefaultInitialCapacity slots on the first insertion.
type Deque[T any] struct {
	storage []T
	front   int
	size    int
}

var _ deque.Deque[string] = (*Deque[string])(nil)

// New returns an empty Deque with DefaultInitialCapacity slots.
func New[T any]() *Deque[T] {
	return &Deque[T]{
		storage: make([]T, DefaultInitialCapacity),
	}
}

// NewWithConfig returns an empty Deque configured by config.
func NewWithConfig[T any](config Config) (*Deque[T], error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &Deque[T]{
		storage: make([]T, config.InitialCapacity),
	}, nil
}

// AddFirst is part of the deque.Deque interface.
func (d *Deque[T]) AddFirst(value T) error {
	if deque.IsAbsent(value) {
		return errors.Annotate(dequeerrors.InvalidArgument, "add first: nil value")
	}
	d.ensureSpace(1)
	d.front = d.index(-1)
	d.storage[d.front] = value
	d.size++
	return nil
}

// AddLast is part of the deque.Deque interface.
func (d *Deque[T]) AddLast(value T) error {
	if deque.IsAbsent(value) {
		return errors.Annotate(dequeerrors.InvalidArgument, "add last: nil value")
	}
	d.ensureSpace(0)
	d.storage[d.index(d.size)] = value
	d.size++
	return nil
}

// RemoveFirst is part of the deque.Deque interface.
func (d *Deque[T]) RemoveFirst() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "remove first")
	}
	value := d.clear(d.front)
	d.front = d.index(1)
	d.shrunk()
	return value, nil
}

// RemoveLast is part of the deque.Deque interface.
func (d *Deque[T]) RemoveLast() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "remove last")
	}
	value := d.clear(d.index(d.size - 1))
	d.shrunk()
	return value, nil
}

// GetFirst is part of the deque.Deque interface.
func (d *Deque[T]) GetFirst() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "get first")
	}
	return d.storage[d.front], nil
}

// GetLast is part of the deque.Deque interface.
func (d *Deque[T]) GetLast() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "get last")
	}
	return d.storage[d.index(d.size-1)], nil
}

// Size is part of the deque.Deque interface.
func (d *Deque[T]) Size() int {
	return d.size
}

// Capacity returns the number of slots in the backing storage.
func (d *Deque[T]) Capacity() int {
	return len(d.storage)
}

// Front returns the physical index of the first element. It is 0 for an
// empty deque.
func (d *Deque[T]) Front() int {
	return d.front
}

// Storage returns a copy of the backing storage, slot for slot. Empty slots
// hold the zero value of T.
func (d *Deque[T]) Storage() []T {
	snapshot := make([]T, len(d.storage))
	copy(snapshot, d.storage)
	return snapshot
}

// Values returns the live elements, first to last.
func (d *Deque[T]) Values() []T {
	values := make([]T, d.size)
	d.copyInOrder(values)
	return values
}

// index returns the physical slot that is offset positions away from the
// front, wrapping in both directions.
func (d *Deque[T]) index(offset int) int {
	return mod(d.front+offset, len(d.storage))
}

// clear empties the slot so the storage no longer references the value,
// and returns what it held.
func (d *Deque[T]) clear(i int) T {
	var zero T
	value := d.storage[i]
	d.storage[i] = zero
	return value
}

// shrunk records the removal of one element. An emptied deque always starts
// again from slot 0.
func (d *Deque[T]) shrunk() {
	d.size--
	if d.size == 0 {
		d.front = 0
	}
}

// ensureSpace doubles the storage if it cannot take another element. The
// live elements are realigned in logical order after lead empty slots, so
// that an element about to be added at the front lands on index 0.
func (d *Deque[T]) ensureSpace(lead int) {
	if len(d.storage) == 0 {
		d.storage = make([]T, DefaultInitialCapacity)
		d.front = 0
		return
	}
	if d.size < len(d.storage) {
		return
	}
	grown := make([]T, 2*len(d.storage))
	d.copyInOrder(grown[lead:])
	logger.Tracef("growing storage from %d to %d slots", len(d.storage), len(grown))
	d.storage = grown
	d.front = lead
}

// copyInOrder writes the live elements into dst from index 0 in logical
// order, unwrapping the window if it straddles the end of the storage.
func (d *Deque[T]) copyInOrder(dst []T) {
	if d.size == 0 {
		return
	}
	end := d.front + d.size
	if end <= len(d.storage) {
		copy(dst, d.storage[d.front:end])
		return
	}
	n := copy(dst, d.storage[d.front:])
	copy(dst[n:], d.storage[:end-len(d.storage)])
}

// mod is the mathematical modulo; the result is never negative.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
