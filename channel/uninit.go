package channel

import (
	"unsafe"
)

// Uninit is a slot that has been reserved but may not yet hold a meaningful
// T. It has the same size and alignment as T.
type Uninit[T any] struct {
	value T
}

// Write stores value in the slot and returns its address.
func (u *Uninit[T]) Write(value T) *T {
	u.value = value
	return &u.value
}

// UninitChannel is a channel whose slots are reserved but not yet written.
//
// Every slot must be written before [UninitChannel.Finalize]. Nothing checks
// this; a slot that was never written reads back as whatever the allocator
// left there, which in Go is the zero T.
type UninitChannel[T any] struct {
	store     Vec[Uninit[T]]
	finalized bool
}

var _ PtrGetter[int] = (*UninitChannel[int])(nil)

// ReserveUninit allocates size slots without writing any element value.
func ReserveUninit[T any](size int) *UninitChannel[T] {
	var store Vec[Uninit[T]]
	return &UninitChannel[T]{
		store: store.Allocate(size, size),
	}
}

func (u *UninitChannel[T]) live() Vec[Uninit[T]] {
	if u.finalized {
		panic(ErrFinalized)
	}
	return u.store
}

// Len returns the number of reserved slots.
func (u *UninitChannel[T]) Len() int {
	return len(u.live())
}

// Store returns the slot store.
func (u *UninitChannel[T]) Store() Vec[Uninit[T]] {
	return u.live()
}

// Write stores value at offset. The offset is checked unless built with
// lattice_nocheck.
func (u *UninitChannel[T]) Write(offset int, value T) {
	at(u.live().Slice(), offset).Write(value)
}

// GetMutPtr returns the address of the slot value at offset with no bounds
// check, for writers that partition the offset range.
func (u *UninitChannel[T]) GetMutPtr(offset int) *T {
	return &unchecked(u.live().Slice(), offset).value
}

// Finalize reinterprets the written slots as an ordinary channel of T. The
// memory (pointer, length and capacity) moves to the result without a copy,
// and u may not be used again.
//
// Finalize cannot tell whether every slot was written; that proof belongs to
// the caller, typically a loop that writes every offset first.
func (u *UninitChannel[T]) Finalize() *Channel[T, Vec[T]] {
	slots := u.live()
	u.store = nil
	u.finalized = true

	data := (*T)(unsafe.Pointer(unsafe.SliceData(slots)))
	store := Vec[T](unsafe.Slice(data, cap(slots))[:len(slots)])
	return New[T](store)
}
