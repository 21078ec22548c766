// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package testing provides a gocheck suite verifying any implementation of
// deque.Deque against the shared contract.
package testing
