package surface_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/surface"
)

func coverScene() (*surface.Scene, surface.Camera) {
	objects := []surface.Object{
		surface.NewSphere(geo.V3{X: 0, Y: -1000, Z: 0}, 1000, surface.NewLambertian(geo.V3{X: 0.5, Y: 0.5, Z: 0.5})),
		surface.NewSphere(geo.V3{X: 0, Y: 1, Z: 0}, 1, surface.NewDielectric(1.5)),
		surface.NewSphere(geo.V3{X: -4, Y: 1, Z: 0}, 1, surface.NewLambertian(geo.V3{X: 0.4, Y: 0.2, Z: 0.1})),
		surface.NewSphere(geo.V3{X: 4, Y: 1, Z: 0}, 1, surface.NewMetal(geo.V3{X: 0.7, Y: 0.6, Z: 0.5}, 0)),
	}

	env := surface.LinearGradient{
		Bottom: geo.V3{X: 1, Y: 1, Z: 1},
		Top:    geo.V3{X: 0.5, Y: 0.7, Z: 1},
	}

	scene := surface.NewScene(objects, env)
	cam := surface.LookAt(geo.V3{X: 13, Y: 2, Z: 3}, geo.V3{}, geo.V3{Y: 1}, 20)
	return scene, cam
}

func TestRenderCoverSceneProducesNonBlackGround(t *testing.T) {
	scene, cam := coverScene()
	cfg := config.SurfaceConfig{Width: 40, Height: 30, Samples: 8, MaxBounces: 8, DirectLighting: false}

	img := surface.Render(cam, scene, cfg, 42)

	x, y := cfg.Width/2, cfg.Height-2
	off := (y*img.Width + x) * 3
	r, g, b := img.Pix[off], img.Pix[off+1], img.Pix[off+2]
	require.False(t, r == 0 && g == 0 && b == 0, "ground row should not alias to pitch black")
}

func TestParallelRenderMatchesSequentialDimensions(t *testing.T) {
	scene, cam := coverScene()
	cfg := config.SurfaceConfig{Width: 16, Height: 12, Samples: 2, MaxBounces: 4}

	img := surface.ParallelRender(cam, scene, cfg, 7)
	require.Equal(t, cfg.Width, img.Width)
	require.Equal(t, cfg.Height, img.Height)
	require.Len(t, img.Pix, cfg.Width*cfg.Height*3)
}

func TestSceneIntersectFindsNearestObject(t *testing.T) {
	scene, _ := coverScene()

	ray := geo.NewRay(geo.V3{X: 0, Y: 1, Z: 10}, geo.V3{Z: -1})
	obj, hit, ok := scene.Intersect(ray)
	require.True(t, ok)
	require.NotNil(t, obj)
	require.InDelta(t, 9, hit.T, 0.01)
}

func TestParticleCloudGeneratesRequestedCountWithinBounds(t *testing.T) {
	bounds := geo.MustAabb(geo.V3{X: -5, Y: -5, Z: -5}, geo.V3{X: 5, Y: 5, Z: 5})
	mat := surface.NewLambertian(geo.V3{X: 1, Y: 0, Z: 0})
	r := rand.New(rand.NewPCG(1, 1))

	objects := surface.ParticleCloud(50, bounds, 0.05, mat, r)
	require.Len(t, objects, 50)
	for _, o := range objects {
		center, _ := o.BoundingSphere()
		require.True(t, bounds.Contains(center))
	}
}

func TestCameraCastRayPointsTowardsTarget(t *testing.T) {
	cam := surface.LookAt(geo.V3{X: 0, Y: 0, Z: 5}, geo.V3{}, geo.V3{Y: 1}, 40)
	r := cam.CastRay(50, 50, 100, 100, 0.5, 0.5, nil)
	require.Less(t, r.Dir.Z, 0.0)
}
