// Package config holds the typed, zero-value-safe parameter structs
// shared by the three render drivers and their CLI flag layers.
package config

// SurfaceConfig parameterizes the path-traced surface renderer.
type SurfaceConfig struct {
	Width, Height int

	// Samples is how many rays are cast per pixel; higher reduces
	// aliasing at the cost of render time.
	Samples int

	// MaxBounces caps recursion depth for indirect sampling.
	MaxBounces int

	// DirectLighting enables explicit sampling of lights at each
	// diffuse hit, in addition to the purely indirect estimate.
	DirectLighting bool

	// SoftShadows perturbs the light's sampled point within its
	// bounding sphere's disk to soften shadow edges.
	SoftShadows bool
}

// DefaultSurfaceConfig returns a reasonable preview-quality configuration.
func DefaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{
		Width:          800,
		Height:         600,
		Samples:        32,
		MaxBounces:     8,
		DirectLighting: true,
		SoftShadows:    true,
	}
}

// LineConfig parameterizes the line renderer's clipping/simplification
// pipeline.
type LineConfig struct {
	// ChopEps is the step length at which each segment is sampled for
	// occlusion chopping, and the offset used for the visibility ray.
	ChopEps float64

	// SimplifyEps is the Ramer-Douglas-Peucker tolerance applied to
	// each resulting polyline.
	SimplifyEps float64
}

// DefaultLineConfig returns sane tolerances for a unit-scale scene.
func DefaultLineConfig() LineConfig {
	return LineConfig{ChopEps: 1e-3, SimplifyEps: 1e-3}
}

// SVGConfig parameterizes the shared SVG writer used by the iso and line
// renderers.
type SVGConfig struct {
	Scale       float64
	StrokeWidth float64
	Background  string
}

// DefaultSVGConfig returns sane defaults for a screen-viewable SVG.
func DefaultSVGConfig() SVGConfig {
	return SVGConfig{Scale: 40, StrokeWidth: 1, Background: "white"}
}
