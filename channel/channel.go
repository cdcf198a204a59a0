// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package channel

import (
	"iter"
)

// Channel is a fixed-length, typed data buffer that exclusively owns its store.
//
// The store's length is fixed at construction; no operation here grows or
// shrinks it. Callers may borrow the store through [Channel.Store] and
// [Channel.StoreMut], but the Channel remains its sole owner.
type Channel[T any, S Store[T]] struct {
	store S
}

var _ Channels[int, *Channel[int, Vec[int]]] = (*Channel[int, Vec[int]])(nil)
var _ Getter[int] = (*Channel[int, Vec[int]])(nil)
var _ RefGetter[int] = (*Channel[int, Vec[int]])(nil)
var _ MutGetter[int] = (*Channel[int, Vec[int]])(nil)
var _ PtrGetter[int] = (*Channel[int, Vec[int]])(nil)

// New wraps an existing store. No elements are copied.
func New[T any, S Store[T]](store S) *Channel[T, S] {
	return &Channel[T, S]{store: store}
}

// Fill allocates a channel of length elements, each equal to value.
func Fill[T any](value T, length int) *Channel[T, Vec[T]] {
	store := make(Vec[T], length)
	fill(store.Slice(), value)
	return New[T](store)
}

// Store returns the backing store.
func (c *Channel[T, S]) Store() S {
	return c.store
}

// StoreMut returns a pointer to the backing store for collaborators that
// need to mutate it in place. The length must not be changed through it.
func (c *Channel[T, S]) StoreMut() *S {
	return &c.store
}

// TakeStore ends the channel's lifetime and hands ownership of the store,
// with its elements intact, to the caller. The channel is left empty.
func (c *Channel[T, S]) TakeStore() (store S) {
	store = c.store
	var empty S
	c.store = empty
	return
}

// Len returns the number of elements.
func (c *Channel[T, S]) Len() int {
	return len(c.store.Slice())
}

// ResetValues overwrites every element with value. The length is unchanged.
func (c *Channel[T, S]) ResetValues(value T) {
	fill(c.store.Slice(), value)
}

// Filled returns a new channel of length elements, each equal to value.
//
// It only uses the receiver for its type, so a nil *Channel works. Panics
// with ErrNotGrowable if S does not implement [Allocator].
func (c *Channel[T, S]) Filled(value T, length int) *Channel[T, S] {
	var store S
	alloc, ok := any(store).(Allocator[S])
	if !ok {
		panic(ErrNotGrowable)
	}
	store = alloc.Allocate(length, length)
	fill(store.Slice(), value)
	return New[T](store)
}

// GetRef returns the element at offset. The element must not be modified
// through the returned pointer.
func (c *Channel[T, S]) GetRef(offset int) *T {
	return at(c.store.Slice(), offset)
}

// GetMut returns the element at offset for modification.
func (c *Channel[T, S]) GetMut(offset int) *T {
	return at(c.store.Slice(), offset)
}

// GetMutPtr returns the address of the element at offset with no bounds
// check in any build mode. Keeping offset in range, and keeping concurrent
// writers on disjoint offsets, is the caller's job.
func (c *Channel[T, S]) GetMutPtr(offset int) *T {
	return unchecked(c.store.Slice(), offset)
}

// Get returns a copy of the element at offset.
func (c *Channel[T, S]) Get(offset int) T {
	return Value[T](c, offset)
}

// Set stores value at offset.
func (c *Channel[T, S]) Set(offset int, value T) {
	*c.GetMut(offset) = value
}

// Ptr returns an unchecked write handle for the element at offset.
func (c *Channel[T, S]) Ptr(offset int) WritePtr[T] {
	return Ptr[T]{addr: c.GetMutPtr(offset)}
}

// Values iterates over offsets and element values in order.
func (c *Channel[T, S]) Values() iter.Seq2[int, T] {
	return func(yield func(offset int, value T) bool) {
		for n, value := range c.store.Slice() {
			if !yield(n, value) {
				return
			}
		}
	}
}
