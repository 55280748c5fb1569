package sdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/sdf"
)

func TestSphereSigns(t *testing.T) {
	s := sdf.Sphere(2)
	require.InDelta(t, -2.0, s.Dist(geo.V3{}), 1e-9)
	require.InDelta(t, 0.0, s.Dist(geo.V3{X: 2}), 1e-9)
	require.InDelta(t, 2.0, s.Dist(geo.V3{X: 4}), 1e-9)
}

func TestUnionIsMin(t *testing.T) {
	a := sdf.Sphere(1)
	b := sdf.Translate(sdf.Sphere(1), geo.V3{X: 5})
	u := sdf.Union(a, b)
	require.InDelta(t, -1.0, u.Dist(geo.V3{}), 1e-9)
	require.InDelta(t, -1.0, u.Dist(geo.V3{X: 5}), 1e-9)
}

func TestIntersectionIsMax(t *testing.T) {
	a := sdf.Sphere(2)
	b := sdf.Translate(sdf.Sphere(2), geo.V3{X: 2})
	i := sdf.Intersection(a, b)
	// the point (1,0,0) lies inside both spheres
	require.Less(t, i.Dist(geo.V3{X: 1}), 0.0)
	// the origin lies on the boundary of b but well inside a, so the max
	// (closer to the surface) should be b's distance, ~0
	require.InDelta(t, 0.0, i.Dist(geo.V3{}), 1e-9)
}

func TestDifferenceRemovesVolume(t *testing.T) {
	a := sdf.Sphere(2)
	b := sdf.Sphere(1)
	d := sdf.Difference(a, b)
	require.Greater(t, d.Dist(geo.V3{}), 0.0) // carved out
	require.Less(t, d.Dist(geo.V3{X: 1.5}), 0.0)
}

func TestShellAndRoundGrowBbox(t *testing.T) {
	s := sdf.Sphere(1)
	shelled := s.Shell(0.1)
	require.InDelta(t, -1.1, shelled.Bbox().Min.X, 1e-9)

	rounded := s.Round(0.2)
	require.InDelta(t, -1.2, rounded.Bbox().Min.X, 1e-9)
}

func TestRayMarchHitsSphere(t *testing.T) {
	s := sdf.Sphere(1)
	r := geo.NewRay(geo.V3{X: -5}, geo.V3{X: 1})
	tHit, ok := s.RayMarch(r, sdf.MaxSteps)
	require.True(t, ok)
	require.InDelta(t, 4.0, tHit, 1e-3)
}

func TestRayMarchMisses(t *testing.T) {
	s := sdf.Sphere(1)
	r := geo.NewRay(geo.V3{X: -5, Y: 10}, geo.V3{X: 1})
	_, ok := s.RayMarch(r, sdf.MaxSteps)
	require.False(t, ok)
}

func TestNormalAtSphereSurface(t *testing.T) {
	s := sdf.Sphere(1)
	n := s.NormalAt(geo.V3{X: 1})
	require.InDelta(t, 1.0, n.X, 1e-3)
}

func TestTransformTranslatesSurface(t *testing.T) {
	s := sdf.Transform(sdf.Sphere(1), geo.Translate(geo.V3{X: 3}))
	require.InDelta(t, -1.0, s.Dist(geo.V3{X: 3}), 1e-9)
}
