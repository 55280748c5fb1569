package work_test

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/internal/work"
)

func TestParallelRowsVisitsEveryRowExactlyOnce(t *testing.T) {
	const rows = 64
	var mu sync.Mutex
	seen := make(map[int]int)

	work.ParallelRows(rows, 1, func(y int, r *rand.Rand) {
		require.NotNil(t, r)
		mu.Lock()
		seen[y]++
		mu.Unlock()
	})

	require.Len(t, seen, rows)
	for y := 0; y < rows; y++ {
		require.Equal(t, 1, seen[y], "row %d should be visited exactly once", y)
	}
}

func TestParallelChunksCoversFullRangeWithoutOverlap(t *testing.T) {
	const n = 100
	const chunkSize = 17
	var mu sync.Mutex
	covered := make([]bool, n)

	work.ParallelChunks(n, chunkSize, 2, func(start, end int, r *rand.Rand) {
		require.NotNil(t, r)
		mu.Lock()
		for i := start; i < end; i++ {
			require.False(t, covered[i], "index %d covered by more than one chunk", i)
			covered[i] = true
		}
		mu.Unlock()
	})

	for i, ok := range covered {
		require.True(t, ok, "index %d never covered", i)
	}
}
