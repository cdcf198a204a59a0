//go:build !lattice_nocheck

package channel

const boundsMode = Checked

// at returns &s[offset], panicking with ErrIndexOutOfBounds when offset is
// outside the slice.
func at[T any](s []T, offset int) *T {
	if uint(offset) >= uint(len(s)) {
		panic(ErrIndexOutOfBounds{Offset: offset, Length: len(s)})
	}
	return &s[offset]
}
