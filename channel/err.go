package channel

import (
	"errors"

	"github.com/ezrec/lattice/translate"
)

var f = translate.From

var (
	ErrNotGrowable    = errors.New(f("store cannot allocate"))
	ErrFinalized      = errors.New(f("uninitialized channel already finalized"))
	ErrNotAddressable = errors.New(f("tuple member has no element address"))
)

// ErrIndexOutOfBounds is the panic value of a checked point access outside
// the channel.
type ErrIndexOutOfBounds struct {
	Offset int
	Length int
}

func (err ErrIndexOutOfBounds) Error() string {
	return f("index %d out of bounds for length %d", err.Offset, err.Length)
}

// Is matches any ErrIndexOutOfBounds, regardless of offset or length.
func (err ErrIndexOutOfBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrIndexOutOfBounds)
	return
}
