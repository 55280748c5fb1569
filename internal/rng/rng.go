// Package rng plumbs per-worker PRNGs so that parallel render workers
// never share mutable RNG state across goroutines.
package rng

import (
	"math/rand/v2"
	"sync/atomic"
)

// counter is mixed into each worker's seed alongside the caller's base
// so that distinct workers given the same base still diverge.
var counter uint64

// New returns a fresh PCG-backed generator seeded from base and an
// internal monotonically increasing counter, suitable for handing one
// per worker/row.
func New(base uint64) *rand.Rand {
	n := atomic.AddUint64(&counter, 1)
	return rand.New(rand.NewPCG(base, n))
}
