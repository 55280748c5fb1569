package line

import "github.com/mirgo-labs/r3d/geo"

// simplify applies the Ramer-Douglas-Peucker algorithm to reduce a
// polyline's point count while staying within eps of the original
// shape. eps <= 0 disables simplification.
func simplify(p Polyline, eps float64) Polyline {
	if eps <= 0 || len(p) < 3 {
		return p
	}

	first, last := p[0], p[len(p)-1]

	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(p)-1; i++ {
		d := perpendicularDistance(p[i], first, last)
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}

	if maxDist <= eps {
		return Polyline{first, last}
	}

	left := simplify(p[:maxIdx+1], eps)
	right := simplify(p[maxIdx:], eps)
	return append(left[:len(left)-1], right...)
}

func perpendicularDistance(p, a, b geo.V3) float64 {
	ab := b.Sub(a)
	norm := ab.Norm()
	if norm == 0 {
		return p.Sub(a).Norm()
	}
	return ab.Cross(p.Sub(a)).Norm() / norm
}
