// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package errors

import "github.com/juju/errors"

const (
	// InvalidArgument is returned when an absent (nil) value is offered to
	// a deque. The deque is left unmodified.
	InvalidArgument = errors.ConstError("invalid argument")

	// EmptyCollection is returned when an element is removed or inspected
	// on a deque holding no elements. The deque is left unmodified.
	EmptyCollection = errors.ConstError("empty collection")
)
