package spatial_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/spatial"
)

func scatterSpheres(n int, seed int64) []geo.Sphere {
	rng := rand.New(rand.NewSource(seed))
	out := make([]geo.Sphere, n)
	for i := range out {
		out[i] = geo.Sphere{
			Center: geo.V3{X: rng.Float64()*100 - 50, Y: rng.Float64()*100 - 50, Z: rng.Float64()*100 - 50},
			Radius: 0.5 + rng.Float64(),
		}
	}
	return out
}

func TestBVHIntersectingIsComplete(t *testing.T) {
	spheres := scatterSpheres(200, 1)
	tree := spatial.BuildBVH(append([]geo.Sphere(nil), spheres...))

	query := geo.Cuboid(geo.V3{}, geo.V3{X: 200, Y: 200, Z: 200})
	got := tree.Intersecting(query)

	var want int
	for _, s := range spheres {
		if _, ok := s.Bbox().Intersection(query); ok {
			want++
		}
	}
	require.Len(t, got, want)
}

func TestBVHRayHitsAgreeWithBruteForce(t *testing.T) {
	spheres := scatterSpheres(150, 2)
	tree := spatial.BuildBVH(append([]geo.Sphere(nil), spheres...))

	r := geo.NewRay(geo.V3{X: -100}, geo.V3{X: 1})
	got := tree.RayHits(r)

	var want int
	for _, s := range spheres {
		if _, ok := s.RayIntersection(r); ok {
			want++
		}
	}
	require.Len(t, got, want)
}

func TestKDTreeRayHitsAreNonDecreasing(t *testing.T) {
	spheres := scatterSpheres(300, 3)
	tree := spatial.BuildKDTree(append([]geo.Sphere(nil), spheres...))

	r := geo.NewRay(geo.V3{X: -100, Y: 1, Z: 1}, geo.V3{X: 1})
	hits := tree.RayHits(r)

	for i := 1; i < len(hits); i++ {
		require.LessOrEqual(t, hits[i-1].T, hits[i].T)
	}
}

func TestKDTreeRayHitsCompleteness(t *testing.T) {
	spheres := scatterSpheres(300, 4)
	tree := spatial.BuildKDTree(append([]geo.Sphere(nil), spheres...))

	r := geo.NewRay(geo.V3{X: -100, Y: 2, Z: -3}, geo.V3{X: 1})
	hits := tree.RayHits(r)

	var want int
	for _, s := range spheres {
		if _, ok := s.RayIntersection(r); ok {
			want++
		}
	}
	require.Len(t, hits, want)
}

func TestBuildKDTreePanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() {
		spatial.BuildKDTree([]geo.Sphere{})
	})
}

func TestBVHWithInfinitePlane(t *testing.T) {
	shapes := []spatial.Shape{
		geo.Plane{Point: geo.V3{}, Normal: geo.V3{Y: 1}},
		geo.Sphere{Center: geo.V3{Y: 10}, Radius: 1},
	}
	tree := spatial.BuildBVH(shapes)

	r := geo.NewRay(geo.V3{Y: 5}, geo.V3{Y: -1})
	hits := tree.RayHits(r)
	require.NotEmpty(t, hits)
}
