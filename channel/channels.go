package channel

// Channels is the operation set shared by a single channel and by
// fixed-arity tuples of co-indexed channels. D is the element value (a
// ValuesN for tuples) and Self is the implementing type.
//
// Members of a tuple are assumed to share one offset range; nothing here
// verifies equal lengths.
type Channels[D, Self any] interface {
	// Filled returns a new Self of length elements, each equal to value.
	// Implementations only use the receiver for its type, so the zero
	// value of Self works.
	Filled(value D, length int) Self
	// ResetValues overwrites every element with value.
	ResetValues(value D)
	Len() int
	Getter[D]
	Set(offset int, value D)
	// Ptr returns an unchecked write handle for offset.
	Ptr(offset int) WritePtr[D]
}

// WritePtr writes one element through a raw address.
type WritePtr[D any] interface {
	Write(value D)
}

// Ptr is the write handle of a single channel element.
type Ptr[T any] struct {
	addr *T
}

// Write stores value at the handle's address.
func (p Ptr[T]) Write(value T) {
	*p.addr = value
}

// Addr returns the raw element address.
func (p Ptr[T]) Addr() *T {
	return p.addr
}

// FillChannels constructs any Channels implementation of length elements,
// each equal to value.
func FillChannels[D any, C Channels[D, C]](value D, length int) C {
	var zero C
	return zero.Filled(value, length)
}

// refOf is the point-read of one tuple member. Members without a single
// element address, such as nested tuples, panic with ErrNotAddressable.
func refOf[D any](member any, offset int) *D {
	r, ok := member.(RefGetter[D])
	if !ok {
		panic(ErrNotAddressable)
	}
	return r.GetRef(offset)
}

// mutOf is the point-read-mutable of one tuple member.
func mutOf[D any](member any, offset int) *D {
	m, ok := member.(MutGetter[D])
	if !ok {
		panic(ErrNotAddressable)
	}
	return m.GetMut(offset)
}

// EqualChannels reports whether a and b have the same length and equal
// elements at every offset. It works for single channels and tuples alike.
func EqualChannels[D comparable, C Channels[D, C]](a, b C) bool {
	length := a.Len()
	if b.Len() != length {
		return false
	}
	for offset := range length {
		if a.Get(offset) != b.Get(offset) {
			return false
		}
	}
	return true
}

//go:generate go run ../internal/cmd/gentuple -o tuple_gen.go
