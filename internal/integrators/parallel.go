package integrators

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest number of panels worth handing to a goroutine.
const minChunk = 2048

// ParallelFor runs fn over contiguous chunks of [0, n) on at most workers
// goroutines. The first error cancels the group's context.
func ParallelFor(ctx context.Context, n, workers int, fn func(ctx context.Context, start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if workers > n/minChunk {
		workers = n / minChunk
	}
	if workers <= 1 {
		return fn(ctx, 0, n)
	}

	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			return fn(gctx, start, end)
		})
	}
	return g.Wait()
}

// IntegrateParallel is Integrate with the panels summed in chunks. Partial
// sums are combined in chunk order, so the result is deterministic for a
// given worker count but may differ from the serial sum in the last digits.
func IntegrateParallel(ctx context.Context, rule Rule, f Integrand, a, b, h float64, workers int) (float64, error) {
	n, step := Steps(a, b, h)
	if workers <= 1 || n < 2*minChunk {
		return sumPanels(rule, f, a, step, 0, n), nil
	}

	chunks := min(workers, n/minChunk)
	chunkSize := (n + chunks - 1) / chunks
	partial := make([]float64, (n+chunkSize-1)/chunkSize)

	err := ParallelFor(ctx, n, chunks, func(ctx context.Context, start, end int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		partial[start/chunkSize] = sumPanels(rule, f, a, step, start, end)
		return nil
	})
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, p := range partial {
		sum += p
	}
	return sum, nil
}
