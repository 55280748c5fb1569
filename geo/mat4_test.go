package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/geo"
)

func TestMat4IdentityMul(t *testing.T) {
	m := geo.Translate(geo.V3{X: 1, Y: 2, Z: 3})
	require.Equal(t, m, geo.Identity().Mul(m))
}

func TestMat4TransformPoint(t *testing.T) {
	m := geo.Translate(geo.V3{X: 1, Y: 2, Z: 3})
	p := m.TransformPoint(geo.V3{X: 1, Y: 1, Z: 1})
	require.Equal(t, geo.V3{X: 2, Y: 3, Z: 4}, p)
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := geo.Translate(geo.V3{X: 3, Y: -2, Z: 5}).Mul(geo.Scale(geo.V3{X: 2, Y: 2, Z: 2}))
	inv, ok := m.Inverse()
	require.True(t, ok)

	p := geo.V3{X: 1, Y: 2, Z: 3}
	round := inv.TransformPoint(m.TransformPoint(p))
	require.InDelta(t, p.X, round.X, 1e-9)
	require.InDelta(t, p.Y, round.Y, 1e-9)
	require.InDelta(t, p.Z, round.Z, 1e-9)
}

func TestMat4InverseSingular(t *testing.T) {
	m := geo.Scale(geo.V3{X: 0, Y: 1, Z: 1})
	_, ok := m.Inverse()
	require.False(t, ok)
}

func TestMat4RotateAroundZ(t *testing.T) {
	m := geo.Rotate(geo.V3{Z: 1}, math.Pi/2)
	v := m.TransformDirection(geo.V3{X: 1})
	require.InDelta(t, 0.0, v.X, 1e-9)
	require.InDelta(t, 1.0, v.Y, 1e-9)
}
