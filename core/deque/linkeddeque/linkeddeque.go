// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package linkeddeque provides a deque.Deque backed by doubly linked nodes.
package linkeddeque

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/juju/deque/core/deque"
	dequeerrors "github.com/juju/deque/core/deque/errors"
)

var logger = loggo.GetLogger("juju.deque.linkeddeque")

// Node is a single element of the chain held by a Deque. Its links can
// only be read; the Deque is the sole writer.
type Node[T any] struct {
	data     T
	previous *Node[T]
	next     *Node[T]
}

// Data returns the value held by the node.
func (n *Node[T]) Data() T {
	return n.data
}

// Previous returns the node closer to the head, or nil if n is the head.
func (n *Node[T]) Previous() *Node[T] {
	return n.previous
}

// Next returns the node closer to the tail, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Deque is a double-ended queue backed by a doubly linked chain of nodes.
// The zero value is an empty deque ready for use.
type Deque[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

var _ deque.Deque[string] = (*Deque[string])(nil)

// New returns an empty Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// AddFirst is part of the deque.Deque interface.
func (d *Deque[T]) AddFirst(value T) error {
	if deque.IsAbsent(value) {
		return errors.Annotate(dequeerrors.InvalidArgument, "add first: nil value")
	}
	n := &Node[T]{data: value}
	if d.size == 0 {
		logger.Tracef("first node added at head")
		d.head, d.tail = n, n
	} else {
		n.next = d.head
		d.head.previous = n
		d.head = n
	}
	d.size++
	return nil
}

// AddLast is part of the deque.Deque interface.
func (d *Deque[T]) AddLast(value T) error {
	if deque.IsAbsent(value) {
		return errors.Annotate(dequeerrors.InvalidArgument, "add last: nil value")
	}
	n := &Node[T]{data: value}
	if d.size == 0 {
		logger.Tracef("first node added at tail")
		d.head, d.tail = n, n
	} else {
		n.previous = d.tail
		d.tail.next = n
		d.tail = n
	}
	d.size++
	return nil
}

// RemoveFirst is part of the deque.Deque interface.
func (d *Deque[T]) RemoveFirst() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "remove first")
	}
	removed := d.head
	if d.size == 1 {
		d.reset()
	} else {
		d.head = removed.next
		d.head.previous = nil
		removed.next = nil
		d.size--
	}
	return removed.data, nil
}

// RemoveLast is part of the deque.Deque interface.
func (d *Deque[T]) RemoveLast() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "remove last")
	}
	removed := d.tail
	if d.size == 1 {
		d.reset()
	} else {
		d.tail = removed.previous
		d.tail.next = nil
		removed.previous = nil
		d.size--
	}
	return removed.data, nil
}

// GetFirst is part of the deque.Deque interface.
func (d *Deque[T]) GetFirst() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "get first")
	}
	return d.head.data, nil
}

// GetLast is part of the deque.Deque interface.
func (d *Deque[T]) GetLast() (T, error) {
	if d.size == 0 {
		var zero T
		return zero, errors.Annotate(dequeerrors.EmptyCollection, "get last")
	}
	return d.tail.data, nil
}

// Size is part of the deque.Deque interface.
func (d *Deque[T]) Size() int {
	return d.size
}

// Head returns the node at the front of the deque, or nil if it is empty.
func (d *Deque[T]) Head() *Node[T] {
	return d.head
}

// Tail returns the node at the back of the deque, or nil if it is empty.
func (d *Deque[T]) Tail() *Node[T] {
	return d.tail
}

// Values returns the elements, head to tail.
func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.size)
	for n := d.head; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}

// reset drops the last remaining node.
func (d *Deque[T]) reset() {
	logger.Tracef("last node removed, deque is empty")
	d.head, d.tail = nil, nil
	d.size = 0
}
