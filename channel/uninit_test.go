package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUninit_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []int{0, 1, 7, 1024} {
		u := ReserveUninit[int](size)
		assert.Equal(size, u.Len())
		for n := range size {
			u.Write(n, n*3)
		}
		ch := u.Finalize()

		want := Fill(0, size)
		for n := range size {
			want.Set(n, n*3)
		}
		assert.Equal(want, ch, "size %d", size)
		assert.True(Equal(want, ch))
	}
}

func TestUninit_FillEquivalent(t *testing.T) {
	assert := assert.New(t)

	u := ReserveUninit[string](5)
	for n := range 5 {
		u.Write(n, "v")
	}
	assert.Equal(Fill("v", 5), u.Finalize())
}

func TestUninit_SameMemory(t *testing.T) {
	assert := assert.New(t)

	u := ReserveUninit[uint16](4)
	for n := range 4 {
		*u.GetMutPtr(n) = uint16(0x100 + n)
	}
	first := u.GetMutPtr(0)
	capacity := cap(u.Store())

	ch := u.Finalize()
	assert.Same(first, ch.GetRef(0))
	assert.Equal(capacity, cap(ch.Store()))
	assert.Equal(Vec[uint16]{0x100, 0x101, 0x102, 0x103}, ch.Store())
}

func TestUninit_Slot(t *testing.T) {
	assert := assert.New(t)

	var slot Uninit[float64]
	ptr := slot.Write(2.5)
	assert.Equal(2.5, *ptr)
	*ptr = 3.5
	assert.Equal(3.5, *slot.Write(3.5))
}

func TestUninit_Finalized(t *testing.T) {
	assert := assert.New(t)

	u := ReserveUninit[int](3)
	for n := range 3 {
		u.Write(n, 1)
	}
	ch := u.Finalize()
	assert.Equal(3, ch.Len())

	assert.PanicsWithValue(ErrFinalized, func() { u.Len() })
	assert.PanicsWithValue(ErrFinalized, func() { u.Write(0, 2) })
	assert.PanicsWithValue(ErrFinalized, func() { u.GetMutPtr(0) })
	assert.PanicsWithValue(ErrFinalized, func() { u.Finalize() })

	// The finalized channel is unaffected.
	assert.Equal(Vec[int]{1, 1, 1}, ch.Store())
}

func TestUninit_Struct(t *testing.T) {
	assert := assert.New(t)

	type sample struct {
		Name  string
		Score float32
	}

	u := ReserveUninit[sample](3)
	for n, name := range []string{"a", "b", "c"} {
		u.Write(n, sample{Name: name, Score: float32(n)})
	}
	ch := u.Finalize()
	assert.Equal(sample{Name: "b", Score: 1}, ch.Get(1))
	assert.Equal(sample{Name: "c", Score: 2}, ch.Get(2))
}
