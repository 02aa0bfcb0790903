// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package vector provides Vector, a generic growable array whose logical
// length and allocated capacity are tracked and controlled explicitly.
package vector

import (
	"iter"

	"github.com/cockroachdb/containers/pkg/util/buildutil"
	"github.com/cockroachdb/errors"
)

// MinCapacity is the smallest capacity a Vector ever has, including when it
// is empty.
const MinCapacity = 5

// Vector is a contiguous sequence of elements of type T.
//
// Unlike a bare slice, a Vector keeps its length separate from its buffer
// and never lets the capacity drop below MinCapacity. Growth triggered by
// PushBack and Insert doubles the capacity; Reserve and ShrinkToFit resize
// to exactly the requested capacity. Clear and PopBack only shorten the
// logical length: vacated slots keep their old values (and whatever those
// reference stays reachable) until they are overwritten or the buffer is
// reallocated.
//
// The zero value is an empty Vector with capacity MinCapacity. A Vector must
// not be copied by value once used, since the copy would share the buffer;
// use Clone or CopyFrom instead. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	// buf is exclusively owned by the Vector and len(buf) is the capacity.
	// It is nil only for a zero value that has not been touched yet.
	buf []T
	n   int
}

// New returns an empty Vector with capacity MinCapacity.
func New[T any]() *Vector[T] {
	return NewWithCapacity[T](MinCapacity)
}

// NewWithCapacity returns an empty Vector with room for at least n elements.
func NewWithCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{buf: make([]T, max(n, MinCapacity))}
}

// Of returns a Vector holding values. Its length and capacity are both
// len(values), raised to MinCapacity if necessary.
func Of[T any](values ...T) *Vector[T] {
	v := NewWithCapacity[T](len(values))
	v.n = copy(v.buf, values)
	return v
}

// Clone returns a deep copy of v with the same length and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.CopyFrom(v)
	return c
}

// CopyFrom replaces the contents of v with a deep copy of o. Copying a Vector
// onto itself does nothing.
func (v *Vector[T]) CopyFrom(o *Vector[T]) {
	if v == o {
		return
	}
	buf := make([]T, o.Cap())
	copy(buf, o.buf[:o.n])
	v.buf, v.n = buf, o.n
	v.assertInvariants()
}

// Len returns the number of elements in the Vector.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v.buf == nil {
		return MinCapacity
	}
	return len(v.buf)
}

// Empty returns true if the Vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.n == 0
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, outOfRangeError(i, v.n)
	}
	return v.buf[i], nil
}

// At returns a pointer to the element at index i. The pointer is valid until
// the next operation that reallocates or shifts the buffer.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.n {
		return nil, outOfRangeError(i, v.n)
	}
	return &v.buf[i], nil
}

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.n {
		return outOfRangeError(i, v.n)
	}
	v.buf[i] = x
	return nil
}

// Slice returns the elements of v as a slice sharing v's buffer. The slice
// has no spare capacity, so appending to it never writes into v. It must not
// be retained across operations that reallocate or shift the buffer.
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.n:v.n]
}

// All returns an iterator over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Clear sets the length to zero. The capacity and the buffer contents are
// left as they are.
func (v *Vector[T]) Clear() {
	v.n = 0
}

// Reserve grows the capacity to exactly n if n exceeds the current capacity.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.Cap() {
		return
	}
	v.realloc(n)
	v.assertInvariants()
}

// ShrinkToFit reduces the capacity to the length, or to MinCapacity if the
// length is smaller.
func (v *Vector[T]) ShrinkToFit() {
	target := max(v.n, MinCapacity)
	if v.n == v.Cap() || target == v.Cap() {
		return
	}
	v.realloc(target)
	v.assertInvariants()
}

// PushBack appends x, doubling the capacity first if the Vector is full.
func (v *Vector[T]) PushBack(x T) {
	v.maybeInit()
	if v.n == len(v.buf) {
		v.realloc(2 * len(v.buf))
	}
	v.buf[v.n] = x
	v.n++
	v.assertInvariants()
}

// PopBack removes the last element and returns it.
func (v *Vector[T]) PopBack() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, errors.WithStack(ErrUnderflow)
	}
	v.n--
	v.assertInvariants()
	return v.buf[v.n], nil
}

// Insert inserts x before pos, which may be any position in [Begin(), End()].
// It returns an iterator at the inserted element. All iterators into v,
// including pos, are invalidated.
func (v *Vector[T]) Insert(pos Cursor[T], x T) (Iterator[T], error) {
	i, err := v.resolve(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if i < 0 || i > v.n {
		return Iterator[T]{}, boundsError(i, v.n)
	}
	if v.n == len(v.buf) {
		v.realloc(2 * len(v.buf))
	}
	// copy has memmove semantics, so shifting right within the buffer does
	// not clobber elements that have yet to move.
	copy(v.buf[i+1:v.n+1], v.buf[i:v.n])
	v.buf[i] = x
	v.n++
	v.assertInvariants()
	return Iterator[T]{buf: v.buf, pos: i}, nil
}

// Erase removes the element at pos, which must be in [Begin(), End()). It
// returns an iterator at the element that followed the erased one, which is
// End() if the last element was erased. All iterators into v, including pos,
// are invalidated.
func (v *Vector[T]) Erase(pos Cursor[T]) (Iterator[T], error) {
	i, err := v.resolve(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if i < 0 || i >= v.n {
		return Iterator[T]{}, boundsError(i, v.n)
	}
	copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--
	v.assertInvariants()
	return Iterator[T]{buf: v.buf, pos: i}, nil
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	v.maybeInit()
	return Iterator[T]{buf: v.buf}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	v.maybeInit()
	return Iterator[T]{buf: v.buf, pos: v.n}
}

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

// resolve translates pos into an index of v. Iterators that do not reference
// v's current buffer, because they belong to another Vector or predate a
// reallocation, are rejected.
func (v *Vector[T]) resolve(pos Cursor[T]) (int, error) {
	if pos == nil {
		return 0, foreignIteratorError()
	}
	begin := v.CBegin()
	c := pos.Const()
	if !c.SameBuffer(begin) {
		return 0, foreignIteratorError()
	}
	return c.Sub(begin), nil
}

// realloc replaces the buffer with a new one of exactly capacity slots and
// carries the live elements over. Every change of capacity goes through here.
func (v *Vector[T]) realloc(capacity int) {
	buf := make([]T, capacity)
	copy(buf, v.buf[:v.n])
	v.buf = buf
}

func (v *Vector[T]) maybeInit() {
	if v.buf == nil {
		v.buf = make([]T, MinCapacity)
	}
}

func (v *Vector[T]) assertInvariants() {
	if !buildutil.Invariants {
		return
	}
	if v.buf == nil {
		if v.n != 0 {
			panic(errors.AssertionFailedf("unallocated vector with length %d", v.n))
		}
		return
	}
	if v.n < 0 || v.n > len(v.buf) || len(v.buf) < MinCapacity {
		panic(errors.AssertionFailedf(
			"vector length %d, capacity %d violates 0 <= length <= capacity, capacity >= %d",
			v.n, len(v.buf), MinCapacity))
	}
}
