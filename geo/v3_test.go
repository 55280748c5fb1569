package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/geo"
)

func TestV3Arithmetic(t *testing.T) {
	a := geo.V3{X: 1, Y: 2, Z: 3}
	b := geo.V3{X: 4, Y: 5, Z: 6}

	require.Equal(t, geo.V3{X: 5, Y: 7, Z: 9}, a.Add(b))
	require.Equal(t, geo.V3{X: -3, Y: -3, Z: -3}, a.Sub(b))
	require.Equal(t, geo.V3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	require.Equal(t, 32.0, a.Dot(b))
}

func TestV3Cross(t *testing.T) {
	x := geo.V3{X: 1}
	y := geo.V3{Y: 1}
	require.Equal(t, geo.V3{Z: 1}, x.Cross(y))
}

func TestV3NormalizeZero(t *testing.T) {
	_, ok := geo.V3{}.Normalize()
	require.False(t, ok)
}

func TestV3NormalizeUnit(t *testing.T) {
	n, ok := geo.V3{X: 3, Y: 4}.Normalize()
	require.True(t, ok)
	require.InDelta(t, 1.0, n.Norm(), 1e-12)
	require.InDelta(t, 0.6, n.X, 1e-12)
	require.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestV3Reflect(t *testing.T) {
	incident := geo.V3{X: 1, Y: -1}
	normal := geo.V3{Y: 1}
	r := incident.Reflect(normal)
	require.InDelta(t, 1.0, r.X, 1e-12)
	require.InDelta(t, 1.0, r.Y, 1e-12)
}

func TestV3MinMaxAbs(t *testing.T) {
	a := geo.V3{X: -1, Y: 5, Z: 2}
	b := geo.V3{X: 3, Y: -2, Z: 2}
	require.Equal(t, geo.V3{X: -1, Y: -2, Z: 2}, a.Min(b))
	require.Equal(t, geo.V3{X: 3, Y: 5, Z: 2}, a.Max(b))
	require.Equal(t, geo.V3{X: 1, Y: 5, Z: 2}, a.Abs())
	require.InDelta(t, math.Max(5, 2), a.MaxComponent(), 1e-12)
}
