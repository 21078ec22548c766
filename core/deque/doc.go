// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

/*
Package deque defines the contract shared by the double-ended queues found
in the sub packages.

Two implementations are provided:

  - arraydeque keeps its elements in a circular buffer which doubles in
    size whenever an insertion would overflow it.
  - linkeddeque keeps its elements in a chain of doubly linked nodes, one
    allocation per element.

Both are single owner structures. None of the types are safe for concurrent
use; callers sharing a deque between goroutines must provide their own
locking.
*/
package deque
