package channel

// Store owns a contiguous, indexable run of T.
//
// The returned slice aliases the store's memory, so writes through it are
// writes to the store.
type Store[T any] interface {
	Slice() []T
}

// Allocator is a Store kind that can allocate a fresh store of itself with an
// explicit length and capacity. Only allocating stores support [Channel.Filled].
type Allocator[S any] interface {
	Allocate(length, capacity int) S
}

// Vec is the default owned, growable store.
type Vec[T any] []T

var _ Store[int] = Vec[int](nil)
var _ Allocator[Vec[int]] = Vec[int](nil)

// Slice returns the elements.
func (v Vec[T]) Slice() []T {
	return v
}

// Allocate returns a new Vec of the given length and capacity.
// The receiver is only used for its type and may be nil.
func (Vec[T]) Allocate(length, capacity int) Vec[T] {
	return make(Vec[T], length, capacity)
}

// fill sets every element of s to value, doubling the copied run each pass.
func fill[T any](s []T, value T) {
	if len(s) == 0 {
		return
	}
	s[0] = value
	for n := 1; n < len(s); n *= 2 {
		copy(s[n:], s[:n])
	}
}
