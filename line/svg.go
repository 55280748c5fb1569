package line

import "github.com/mirgo-labs/r3d/iso"

// ToXY projects each polyline's points down to their X,Y components,
// discarding Z (meaningless after camera projection), for output
// through the shared iso/svg writer.
func ToXY(polylines []Polyline) []iso.Polyline {
	out := make([]iso.Polyline, len(polylines))
	for i, p := range polylines {
		xy := make(iso.Polyline, len(p))
		for j, v := range p {
			xy[j] = iso.XY{X: v.X, Y: v.Y}
		}
		out[i] = xy
	}
	return out
}
