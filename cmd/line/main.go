// Command line renders a scene's silhouette and feature edges as a
// line-art SVG, projecting through either a perspective or an
// isometric (orthographic) camera.
package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/geo"
	"github.com/mirgo-labs/r3d/iso/svg"
	"github.com/mirgo-labs/r3d/line"
	"github.com/mirgo-labs/r3d/sdf"
)

func main() {
	ortho := flag.Bool("isometric", false, "use an orthographic projection instead of perspective")
	fovy := flag.Float64("fovy", 40, "vertical field of view in degrees (perspective only)")
	chopEps := flag.Float64("chop-eps", 0.02, "segment sampling step before visibility testing")
	simplifyEps := flag.Float64("simplify-eps", 0.01, "Ramer-Douglas-Peucker tolerance")
	scale := flag.Float64P("scale", "s", 120, "SVG pixels per world unit")
	out := flag.StringP("out", "o", "scene.svg", "output SVG path")
	flag.Parse()

	runID := uuid.New()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("run_id", runID.String()).Str("cmd", "line").Logger()

	objects := []line.Object{cubeMesh(), torusSDF()}
	scene := line.NewScene(objects)

	cam := line.LookAt(geo.V3{X: 4, Y: 3, Z: 5}, geo.V3{}, geo.V3{Y: 1})
	if *ortho {
		cam = cam.WithOrthographic(-3, 3, -3, 3, 0.1, 100)
	} else {
		cam = cam.WithPerspective(*fovy, 1, 0.1, 100)
	}

	cfg := config.LineConfig{ChopEps: *chopEps, SimplifyEps: *simplifyEps}

	logger.Info().Bool("isometric", *ortho).Int("objects", len(objects)).Msg("rendering line scene")
	start := time.Now()
	polylines := line.Render(cam, scene, objects, cfg)
	logger.Info().Dur("elapsed", time.Since(start)).Int("polylines", len(polylines)).Msg("render complete")

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *out).Msg("failed to create output file")
	}
	defer f.Close()

	svgCfg := config.SVGConfig{Scale: *scale, StrokeWidth: 1, Background: "white"}
	svg.WritePolylines(f, line.ToXY(polylines), svgCfg)
	logger.Info().Str("path", *out).Msg("wrote output")
}

// cubeMesh builds a unit cube centered at the origin, two triangles
// per face.
func cubeMesh() line.Mesh {
	half := 0.5
	corners := [8]geo.V3{
		{X: -half, Y: -half, Z: -half},
		{X: half, Y: -half, Z: -half},
		{X: half, Y: half, Z: -half},
		{X: -half, Y: half, Z: -half},
		{X: -half, Y: -half, Z: half},
		{X: half, Y: -half, Z: half},
		{X: half, Y: half, Z: half},
		{X: -half, Y: half, Z: half},
	}
	quad := func(a, b, c, d int) []geo.Triangle {
		return []geo.Triangle{
			{A: corners[a], B: corners[b], C: corners[c]},
			{A: corners[a], B: corners[c], C: corners[d]},
		}
	}
	var tris []geo.Triangle
	tris = append(tris, quad(0, 1, 2, 3)...)
	tris = append(tris, quad(4, 5, 6, 7)...)
	tris = append(tris, quad(0, 1, 5, 4)...)
	tris = append(tris, quad(3, 2, 6, 7)...)
	tris = append(tris, quad(0, 3, 7, 4)...)
	tris = append(tris, quad(1, 2, 6, 5)...)
	return line.Mesh{Triangles: tris}
}

// torusSDF places a small torus beside the cube so the silhouette
// extractor has an implicit surface to march, alongside the mesh.
func torusSDF() line.SDFObject {
	surface := sdf.Translate(sdf.Torus(0.8, 0.25), geo.V3{X: 2})
	return line.SDFObject{Surface: surface, GridStep: 0.1}
}
