// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import "errors"

// Sentinel errors shared across fatool. Check them with errors.Is; callers
// wrap them with the offending path or operation.
var (
	// ErrEmptyInput is returned when an operation needs at least one byte.
	ErrEmptyInput = errors.New("empty input")

	// ErrNotFound is returned by the loader when a path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrIO is returned by the loader for any other read failure.
	ErrIO = errors.New("i/o failure")

	// ErrDecode is returned when a buffer cannot be interpreted as text.
	ErrDecode = errors.New("cannot decode text")

	// ErrPrecondition is returned for malformed arguments, such as unequal
	// buffers handed to the hex dump renderer or a negative context radius.
	ErrPrecondition = errors.New("precondition violated")
)
