// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector

import "github.com/cockroachdb/errors"

// Cursor is a position in a Vector. It is implemented by Iterator and
// ConstIterator, so a mutable iterator can be passed anywhere a read-only one
// is expected. The conversion only goes one way.
type Cursor[T any] interface {
	// Const returns the position as a read-only iterator.
	Const() ConstIterator[T]
}

// Iterator references one slot of a Vector's buffer and allows the element
// there to be read and written. It does not own the buffer.
//
// An Iterator is invalidated by any operation that reallocates or shifts the
// buffer: Reserve, ShrinkToFit, Insert, Erase, and a PushBack that grows the
// Vector. Using an invalidated Iterator is a programming error that is not
// detected, except that Insert and Erase reject iterators from a buffer that
// has since been replaced. Dereferencing End() is likewise undefined.
type Iterator[T any] struct {
	buf []T
	pos int
}

var _ Cursor[int] = Iterator[int]{}

// Value returns the element the iterator points at.
func (it Iterator[T]) Value() T {
	return it.buf[it.pos]
}

// Ptr returns a pointer to the element the iterator points at.
func (it Iterator[T]) Ptr() *T {
	return &it.buf[it.pos]
}

// Set overwrites the element the iterator points at.
func (it Iterator[T]) Set(x T) {
	it.buf[it.pos] = x
}

// Next returns an iterator at the following slot. Advancing past End() is
// undefined.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Equal returns true if o points at the same slot of the same buffer.
func (it Iterator[T]) Equal(o Cursor[T]) bool {
	return it.Const().Equal(o)
}

// Const implements Cursor.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos}
}

// ConstIterator is the read-only counterpart of Iterator, with the same
// validity rules. It also serves as the common currency for positions: the
// distance between two ConstIterators translates a position into an index.
type ConstIterator[T any] struct {
	buf []T
	pos int
}

var _ Cursor[int] = ConstIterator[int]{}

// Value returns the element the iterator points at.
func (it ConstIterator[T]) Value() T {
	return it.buf[it.pos]
}

// Next returns an iterator at the following slot. Advancing past End() is
// undefined.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	it.pos++
	return it
}

// Equal returns true if o points at the same slot of the same buffer.
func (it ConstIterator[T]) Equal(o Cursor[T]) bool {
	c := o.Const()
	if it.buf == nil && c.buf == nil {
		return it.pos == c.pos
	}
	return it.SameBuffer(c) && it.pos == c.pos
}

// SameBuffer returns true if both iterators reference the same buffer, which
// is required for Sub.
func (it ConstIterator[T]) SameBuffer(o Cursor[T]) bool {
	return sameBuffer(it.buf, o.Const().buf)
}

// Sub returns the signed number of slots from o to it. The iterators must
// reference the same buffer.
func (it ConstIterator[T]) Sub(o ConstIterator[T]) int {
	if !it.SameBuffer(o) {
		panic(errors.AssertionFailedf("subtracting iterators over different buffers"))
	}
	return it.pos - o.pos
}

// Const implements Cursor.
func (it ConstIterator[T]) Const() ConstIterator[T] {
	return it
}

// sameBuffer compares slot addresses. Buffers are never resliced, so equal
// first slots and lengths mean the same allocation.
func sameBuffer[T any](a, b []T) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}
