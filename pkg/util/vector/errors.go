// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector

import "github.com/cockroachdb/errors"

// Errors returned by Vector operations. The returned errors wrap these
// sentinels with the offending position, so callers should test for them
// with errors.Is.
var (
	// ErrOutOfRange is returned by indexed access outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
	// ErrUnderflow is returned by PopBack on an empty Vector.
	ErrUnderflow = errors.New("pop from empty vector")
	// ErrBounds is returned by Insert and Erase when the position does not
	// resolve to an index they accept.
	ErrBounds = errors.New("iterator out of bounds")
)

func outOfRangeError(i, n int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d with length %d", i, n)
}

func boundsError(i, n int) error {
	return errors.Wrapf(ErrBounds, "position %d with length %d", i, n)
}

func foreignIteratorError() error {
	return errors.Wrap(ErrBounds, "iterator does not reference the current buffer")
}
