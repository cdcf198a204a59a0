// Package parallel fills channels from several goroutines, each writing a
// disjoint span of offsets through raw element addresses.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/lattice/channel"
	"github.com/ezrec/lattice/internal"
)

// checkEvery is how many elements a worker writes between context checks.
const checkEvery = 1024

// Fill stores value(offset) at every offset in [0, length) of dst, splitting
// the range into at most workers spans. workers <= 0 uses GOMAXPROCS.
//
// dst must have at least length elements and nothing else may touch it until
// Fill returns. The first error from value, or the context's error, stops
// all workers and is returned; elements already written stay written.
func Fill[T any](ctx context.Context, dst channel.PtrGetter[T], length int, workers int, value func(offset int) (T, error)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	for start, end := range internal.Spans(length, workers) {
		g.Go(func() error {
			for offset := start; offset < end; offset++ {
				if (offset-start)%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				v, err := value(offset)
				if err != nil {
					return err
				}
				*dst.GetMutPtr(offset) = v
			}
			return nil
		})
	}

	return g.Wait()
}

// Build reserves an uninitialized channel of length elements, fills every
// slot with [Fill], and finalizes it. On error no channel is returned.
func Build[T any](ctx context.Context, length int, workers int, value func(offset int) (T, error)) (*channel.Channel[T, channel.Vec[T]], error) {
	u := channel.ReserveUninit[T](length)
	err := Fill[T](ctx, u, length, workers, value)
	if err != nil {
		return nil, err
	}
	return u.Finalize(), nil
}
