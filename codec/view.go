package codec

import (
	"unsafe"

	"github.com/ezrec/lattice/channel"
)

// unsafeView aliases the length reserved slots of u as a []T, so a single
// decode pass writes every slot. length must be positive and equal u.Len().
func unsafeView[T any](u *channel.UninitChannel[T], length int) []T {
	return unsafe.Slice(u.GetMutPtr(0), length)
}
