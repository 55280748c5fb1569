package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/geo"
)

func TestMustAabbPanicsOnInvertedBounds(t *testing.T) {
	require.Panics(t, func() {
		geo.MustAabb(geo.V3{X: 1}, geo.V3{X: -1})
	})
}

func TestAabbUnionAndContains(t *testing.T) {
	a := geo.Cuboid(geo.V3{}, geo.V3{X: 2, Y: 2, Z: 2})
	b := geo.Cuboid(geo.V3{X: 5}, geo.V3{X: 2, Y: 2, Z: 2})
	u := a.Union(b)

	require.True(t, u.Contains(geo.V3{}))
	require.True(t, u.Contains(geo.V3{X: 5}))
	require.True(t, u.Contains(geo.V3{X: 2.5}))
}

func TestAabbIntersectionDisjoint(t *testing.T) {
	a := geo.Cuboid(geo.V3{}, geo.V3{X: 1, Y: 1, Z: 1})
	b := geo.Cuboid(geo.V3{X: 10}, geo.V3{X: 1, Y: 1, Z: 1})
	_, ok := a.Intersection(b)
	require.False(t, ok)
}

func TestAabbRayIntersectionHitAndMiss(t *testing.T) {
	box := geo.Cuboid(geo.V3{}, geo.V3{X: 2, Y: 2, Z: 2})

	hit := geo.NewRay(geo.V3{X: -5}, geo.V3{X: 1})
	tNear, tFar, ok := box.RayIntersection(hit)
	require.True(t, ok)
	require.InDelta(t, 4.0, tNear, 1e-9)
	require.InDelta(t, 6.0, tFar, 1e-9)

	miss := geo.NewRay(geo.V3{X: -5, Y: 10}, geo.V3{X: 1})
	_, _, ok = box.RayIntersection(miss)
	require.False(t, ok)
}

func TestAabbFromPointsEmpty(t *testing.T) {
	_, ok := geo.FromPoints(nil)
	require.False(t, ok)
}

func TestAabbInfinite(t *testing.T) {
	p := geo.Plane{Point: geo.V3{}, Normal: geo.V3{Y: 1}}
	require.True(t, p.Bbox().Infinite())
	require.False(t, geo.Cuboid(geo.V3{}, geo.V3{X: 1, Y: 1, Z: 1}).Infinite())
}

func TestAabbTransformTranslate(t *testing.T) {
	box := geo.Cuboid(geo.V3{}, geo.V3{X: 2, Y: 2, Z: 2})
	moved := box.Transform(geo.Translate(geo.V3{X: 10}))
	require.InDelta(t, 9.0, moved.Min.X, 1e-9)
	require.InDelta(t, 11.0, moved.Max.X, 1e-9)
}
