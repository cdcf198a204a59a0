package codec

import (
	"errors"
	"reflect"

	"github.com/ezrec/lattice/translate"
)

var f = translate.From

var (
	ErrMagic     = errors.New(f("not a channel snapshot"))
	ErrTruncated = errors.New(f("snapshot truncated"))
	ErrChecksum  = errors.New(f("snapshot checksum mismatch"))
	ErrFlags     = errors.New(f("snapshot flags unknown"))
	ErrPayload   = errors.New(f("snapshot payload invalid"))
)

// ErrVersion is returned for a snapshot of an unsupported version.
type ErrVersion byte

func (err ErrVersion) Error() string {
	return f("snapshot version %d unsupported", byte(err))
}

// ErrKind is returned when the snapshot element kind does not match.
type ErrKind struct {
	Want reflect.Kind
	Got  reflect.Kind
}

func (err *ErrKind) Error() string {
	return f("snapshot holds %v elements, not %v", err.Got, err.Want)
}
