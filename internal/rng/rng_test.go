package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/internal/rng"
)

func TestNewProducesDistinctStreamsForSameBase(t *testing.T) {
	a := rng.New(7)
	b := rng.New(7)
	require.NotEqual(t, a.Uint64(), b.Uint64(), "two generators seeded in the same instant must still diverge")
}

func TestNewFloat64IsInUnitInterval(t *testing.T) {
	a := rng.New(42).Float64()
	require.GreaterOrEqual(t, a, 0.0)
	require.Less(t, a, 1.0)
}
