package channel

import (
	"unsafe"
)

// RefGetter reads an element in place. The pointer is a read-only view.
type RefGetter[T any] interface {
	GetRef(offset int) *T
}

// MutGetter returns an element for modification. The caller must hold the
// only live reference to the channel while using the pointer.
type MutGetter[T any] interface {
	GetMut(offset int) *T
}

// PtrGetter returns raw element addresses with no bounds check in any build
// mode. It exists for writers that partition the offset range, and the
// caller is responsible for bounds and disjointness.
type PtrGetter[T any] interface {
	GetMutPtr(offset int) *T
}

// Getter reads an element by value.
type Getter[T any] interface {
	Get(offset int) T
}

// Value reads the element at offset from anything with point-read access and
// returns a copy.
func Value[T any](r RefGetter[T], offset int) T {
	return *r.GetRef(offset)
}

// unchecked returns &s[offset] without a bounds check.
func unchecked[T any](s []T, offset int) *T {
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(s))
	return (*T)(unsafe.Add(base, uintptr(offset)*unsafe.Sizeof(zero)))
}
