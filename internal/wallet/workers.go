package wallet

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the fan-out used when a caller passes Workers <= 0.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// forEach runs fn(i) for i in [0, n) on at most workers goroutines and
// returns the first error. Pending calls are skipped once one fails.
// Each call owns its own result slot, so callers write into a preallocated
// slice without locking.
func forEach(n, workers int, fn func(i int) error) error {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	if workers == 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return g.Wait()
}
