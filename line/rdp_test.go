package line

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/geo"
)

func TestSimplifyCollapsesCollinearPoints(t *testing.T) {
	p := Polyline{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 2, Y: 0},
		{X: 3, Y: 0},
	}
	out := simplify(p, 0.01)
	require.Len(t, out, 2)
	require.Equal(t, geo.V3{X: 0, Y: 0}, out[0])
	require.Equal(t, geo.V3{X: 3, Y: 0}, out[len(out)-1])
}

func TestSimplifyKeepsCornerOutsideTolerance(t *testing.T) {
	p := Polyline{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 0},
	}
	out := simplify(p, 0.01)
	require.Len(t, out, 3)
}

func TestSimplifyDisabledAtZeroEps(t *testing.T) {
	p := Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	require.Equal(t, p, simplify(p, 0))
}
