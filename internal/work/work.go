// Package work provides the parallel-for-over-rows helper shared by the
// render drivers: one goroutine per unit of work, joined by an
// errgroup, each handed its own PRNG.
package work

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/mirgo-labs/r3d/internal/rng"
)

// ParallelRows runs fn once per row in [0,rows), each on its own
// goroutine with its own PRNG seeded from base. It blocks until every
// row has completed.
func ParallelRows(rows int, base uint64, fn func(y int, r *rand.Rand)) {
	var g errgroup.Group
	for y := 0; y < rows; y++ {
		y := y
		g.Go(func() error {
			fn(y, rng.New(base))
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelChunks splits [0,n) into chunkSize-sized ranges and runs fn
// once per chunk, each on its own goroutine with its own PRNG.
func ParallelChunks(n, chunkSize int, base uint64, fn func(start, end int, r *rand.Rand)) {
	if chunkSize <= 0 {
		chunkSize = n
	}

	var g errgroup.Group
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			fn(start, end, rng.New(base))
			return nil
		})
	}
	_ = g.Wait()
}
