package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lattice/channel"
)

func TestFill(t *testing.T) {
	assert := assert.New(t)

	for _, workers := range []int{-1, 0, 1, 3, 16, 1000} {
		ch := channel.Fill(0, 777)
		err := Fill[int](context.Background(), ch, ch.Len(), workers, func(offset int) (int, error) {
			return offset * 2, nil
		})
		assert.NoError(err)
		for n, value := range ch.Values() {
			assert.Equal(n*2, value, "workers %d", workers)
		}
	}
}

func TestFill_Tuple(t *testing.T) {
	assert := assert.New(t)

	density := channel.Fill[float32](0, 64)
	color := channel.Fill[uint32](0, 64)

	err := Fill[float32](context.Background(), density, 64, 4, func(offset int) (float32, error) {
		return float32(offset) / 2, nil
	})
	assert.NoError(err)
	err = Fill[uint32](context.Background(), color, 64, 4, func(offset int) (uint32, error) {
		return uint32(offset) << 8, nil
	})
	assert.NoError(err)

	voxels := channel.NewTuple2[float32, uint32](density, color)
	assert.Equal(channel.Values2[float32, uint32]{A: 5, B: 10 << 8}, voxels.Get(10))
}

func TestFill_Error(t *testing.T) {
	assert := assert.New(t)

	bad := errors.New("bad offset")
	var calls atomic.Int64

	ch := channel.Fill(0, 100000)
	err := Fill[int](context.Background(), ch, ch.Len(), 4, func(offset int) (int, error) {
		calls.Add(1)
		if offset == 10 {
			return 0, bad
		}
		return 1, nil
	})
	assert.ErrorIs(err, bad)
	assert.Less(calls.Load(), int64(100000))
}

func TestFill_Canceled(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := channel.Fill(0, 10)
	err := Fill[int](ctx, ch, ch.Len(), 2, func(offset int) (int, error) {
		return 1, nil
	})
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(channel.Fill(0, 10), ch)
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	ch, err := Build(context.Background(), 1000, 8, func(offset int) (int64, error) {
		return int64(offset) - 500, nil
	})
	assert.NoError(err)
	assert.Equal(1000, ch.Len())
	assert.Equal(int64(-500), ch.Get(0))
	assert.Equal(int64(499), ch.Get(999))

	ch, err = Build(context.Background(), 0, 8, func(offset int) (int64, error) {
		return 0, errors.New("never called")
	})
	assert.NoError(err)
	assert.Equal(0, ch.Len())

	ch, err = Build(context.Background(), 10, 2, func(offset int) (int64, error) {
		return 0, errors.New("boom")
	})
	assert.Error(err)
	assert.Nil(ch)
}
