package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzChannel(f *testing.F) {
	f.Add(uint16(0), int32(0), uint16(0), int32(0))
	f.Add(uint16(10), int32(-1), uint16(9), int32(7))
	f.Add(uint16(4096), int32(1<<30), uint16(1234), int32(-5))

	f.Fuzz(func(t *testing.T, length uint16, value int32, offset uint16, write int32) {
		assert := assert.New(t)

		size := int(length)
		ch := Fill(value, size)

		u := ReserveUninit[int32](size)
		for n := range size {
			u.Write(n, value)
		}
		assert.Equal(ch, u.Finalize())

		if size == 0 {
			return
		}

		pos := int(offset) % size
		ch.Set(pos, write)
		assert.Equal(write, ch.Get(pos))
		if pos > 0 {
			assert.Equal(value, ch.Get(pos-1))
		}
		if pos < size-1 {
			assert.Equal(value, ch.Get(pos+1))
		}

		store := ch.TakeStore()
		assert.Equal(write, New[int32](store).Get(pos))
	})
}
