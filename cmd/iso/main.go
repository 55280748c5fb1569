// Command iso renders a sparse voxel structure as an isometric SVG
// line drawing or filled three-tone illustration.
package main

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/mirgo-labs/r3d/config"
	"github.com/mirgo-labs/r3d/iso"
	"github.com/mirgo-labs/r3d/iso/svg"
)

func main() {
	scale := flag.Float64P("scale", "s", 40, "pixels per world unit")
	stroke := flag.Float64("stroke-width", 1, "polyline stroke width")
	background := flag.String("background", "white", "SVG background color, empty for none")
	fill := flag.Bool("fill", false, "emit filled three-tone faces instead of wireframe edges")
	size := flag.IntP("size", "n", 8, "edge length of the demo voxel cube")
	out := flag.StringP("out", "o", "voxels.svg", "output SVG path")
	flag.Parse()

	runID := uuid.New()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("run_id", runID.String()).Str("cmd", "iso").Logger()

	voxels := cubeVoxels(*size)
	logger.Info().Int("voxels", len(voxels)).Bool("fill", *fill).Msg("rendering voxel set")

	cfg := config.SVGConfig{Scale: *scale, StrokeWidth: *stroke, Background: *background}

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *out).Msg("failed to create output file")
	}
	defer f.Close()

	start := time.Now()
	if *fill {
		triangles := iso.Render(voxels)
		groups := iso.GroupsByOrientation(triangles)
		svg.WriteFillGroups(f, groups, [3]string{"#dddddd", "#aaaaaa", "#888888"}, cfg)
	} else {
		polylines := iso.Polylines(voxels)
		svg.WritePolylines(f, polylines, cfg)
	}
	logger.Info().Dur("elapsed", time.Since(start)).Str("path", *out).Msg("wrote output")
}

// cubeVoxels fills a solid n x n x n cube, the self-contained demo shape
// this command renders.
func cubeVoxels(n int) []iso.Voxel {
	var out []iso.Voxel
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				out = append(out, iso.Voxel{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}
