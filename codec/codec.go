// Package codec encodes channels of fixed-size numbers as compact binary
// snapshots.
//
// A snapshot frame is laid out as:
//
//	magic    "LC"
//	version  1 byte
//	kind     1 byte, the reflect.Kind of the element type
//	flags    1 byte, FlagZstd when the payload is zstd compressed
//	count    uvarint element count
//	payload  little-endian elements, possibly compressed
//	crc      4 bytes, little-endian CRC32 (IEEE) of everything after the magic
package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"reflect"

	"github.com/klauspost/compress/zstd"

	"github.com/ezrec/lattice/channel"
)

const (
	Version = 1

	FlagZstd = 1 << 0 // Payload is zstd compressed.

	flagMask = FlagZstd
)

var magic = [2]byte{'L', 'C'}

// Number is the set of element types a snapshot can carry.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Options controls encoding.
type Options struct {
	Compress bool // Compress the payload with zstd.
}

// Marshal encodes every element of ch into a snapshot frame.
func Marshal[T Number, S channel.Store[T]](ch *channel.Channel[T, S], opts Options) (data []byte, err error) {
	values := ch.Store().Slice()

	payload, err := binary.Append(nil, binary.LittleEndian, values)
	if err != nil {
		return
	}

	var flags byte
	if opts.Compress {
		payload, err = compress(payload)
		if err != nil {
			return
		}
		flags |= FlagZstd
	}

	data = append(data, magic[:]...)
	data = append(data, Version, byte(reflect.TypeFor[T]().Kind()), flags)
	data = binary.AppendUvarint(data, uint64(len(values)))
	data = append(data, payload...)
	data = binary.LittleEndian.AppendUint32(data, crc32.ChecksumIEEE(data[len(magic):]))

	return
}

// Unmarshal decodes a snapshot frame into a new channel. The element kind
// recorded in the frame must match T.
func Unmarshal[T Number](data []byte) (ch *channel.Channel[T, channel.Vec[T]], err error) {
	header := len(magic) + 3
	if len(data) < header+1+4 {
		err = ErrTruncated
		return
	}
	if data[0] != magic[0] || data[1] != magic[1] {
		err = ErrMagic
		return
	}

	body := data[len(magic) : len(data)-4]
	want := binary.LittleEndian.Uint32(data[len(data)-4:])
	if crc32.ChecksumIEEE(body) != want {
		err = ErrChecksum
		return
	}

	version, kind, flags := data[2], reflect.Kind(data[3]), data[4]
	if version != Version {
		err = ErrVersion(version)
		return
	}
	if expect := reflect.TypeFor[T]().Kind(); kind != expect {
		err = &ErrKind{Want: expect, Got: kind}
		return
	}
	if flags&^flagMask != 0 {
		err = fmt.Errorf("%w: flags 0x%02x", ErrFlags, flags)
		return
	}

	count, n := binary.Uvarint(data[header : len(data)-4])
	if n <= 0 {
		err = ErrTruncated
		return
	}
	payload := data[header+n : len(data)-4]

	var zero T
	size := uint64(binary.Size(zero))
	if count > math.MaxInt/size {
		err = ErrTruncated
		return
	}
	expect := count * size

	if flags&FlagZstd != 0 {
		payload, err = decompress(payload, expect)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrPayload, err)
			return
		}
	}

	if uint64(len(payload)) != expect {
		err = ErrTruncated
		return
	}

	length := int(count)
	u := channel.ReserveUninit[T](length)
	if length > 0 {
		_, err = binary.Decode(payload, binary.LittleEndian, unsafeView(u, length))
		if err != nil {
			return
		}
	}
	ch = u.Finalize()

	return
}

func compress(src []byte) (dst []byte, err error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return
	}
	defer enc.Close()

	dst = enc.EncodeAll(src, nil)
	return
}

// decompress inflates src, refusing to produce more than limit bytes.
func decompress(src []byte, limit uint64) (dst []byte, err error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(max(limit, 1)))
	if err != nil {
		return
	}
	defer dec.Close()

	return dec.DecodeAll(src, nil)
}
