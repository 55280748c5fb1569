package surface

import (
	"math"
	"math/rand/v2"

	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/internal/work"
)

// Image is a flat, row-major RGB buffer in [0,255] per channel, the
// shared in-memory representation the surface/image encoders consume.
type Image struct {
	Width, Height int
	Pix           []byte
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]byte, width*height*3)}
}

// Dimensions and Pixels satisfy surface/image.RGBBuffer.
func (img *Image) Dimensions() (int, int) { return img.Width, img.Height }
func (img *Image) Pixels() []byte         { return img.Pix }

// Render traces scene through camera sequentially, one row at a time.
func Render(camera Camera, scene *Scene, cfg config.SurfaceConfig, seed uint64) *Image {
	img := NewImage(cfg.Width, cfg.Height)
	r := rand.New(rand.NewPCG(seed, 0))
	for y := 0; y < cfg.Height; y++ {
		renderRow(img, y, camera, scene, cfg, r)
	}
	return img
}

// ParallelRender traces scene through camera with one worker goroutine
// per output row, each seeded independently from base.
func ParallelRender(camera Camera, scene *Scene, cfg config.SurfaceConfig, base uint64) *Image {
	img := NewImage(cfg.Width, cfg.Height)
	work.ParallelRows(cfg.Height, base, func(y int, r *rand.Rand) {
		renderRow(img, y, camera, scene, cfg, r)
	})
	return img
}

func renderRow(img *Image, y int, camera Camera, scene *Scene, cfg config.SurfaceConfig, r *rand.Rand) {
	for x := 0; x < img.Width; x++ {
		c := renderPixel(x, y, camera, scene, cfg, r)

		off := (y*img.Width + x) * 3
		img.Pix[off] = c.X
		img.Pix[off+1] = c.Y
		img.Pix[off+2] = c.Z
	}
}

type rgb8 struct{ X, Y, Z byte }

func renderPixel(x, y int, camera Camera, scene *Scene, cfg config.SurfaceConfig, r *rand.Rand) rgb8 {
	var sum geo.V3
	for i := 0; i < cfg.Samples; i++ {
		ray := camera.CastRay(x, y, cfg.Width, cfg.Height, r.Float64(), r.Float64(), r)
		sum = sum.Add(sample(scene, ray, 0, r, cfg))
	}
	c := sum.Scale(1 / float64(cfg.Samples))

	// gamma correct.
	c = geo.V3{X: math.Sqrt(clamp01(c.X)), Y: math.Sqrt(clamp01(c.Y)), Z: math.Sqrt(clamp01(c.Z))}

	return rgb8{
		X: byte(c.X * 255),
		Y: byte(c.Y * 255),
		Z: byte(c.Z * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
