// Package line implements the line-art renderer: objects expose their
// silhouette/feature edges as world-space polylines, which are chopped,
// visibility-tested against the scene, projected, clipped, and
// simplified into the final 2D output.
package line

import (
	"math"

	"github.com/mirgo-labs/r3d/geo"
)

// Camera projects world-space points to the 2D plane via a combined
// projection * inverse(camera-to-world) matrix, supporting either a
// perspective or an isometric/orthographic projection.
type Camera struct {
	position      geo.V3
	cameraToWorld geo.Mat4
	matrix        geo.Mat4
}

// LookAt builds a camera at position looking towards target, oriented
// by vup.
func LookAt(position, target, vup geo.V3) Camera {
	f, ok := target.Sub(position).Normalize()
	if !ok {
		f = geo.V3{Z: -1}
	}
	s, ok := f.Cross(vup).Normalize()
	if !ok {
		s = geo.V3{X: 1}
	}
	u := s.Cross(f)

	cameraToWorld := geo.Mat4{
		{s.X, u.X, -f.X, position.X},
		{s.Y, u.Y, -f.Y, position.Y},
		{s.Z, u.Z, -f.Z, position.Z},
		{0, 0, 0, 1},
	}

	return Camera{position: position, cameraToWorld: cameraToWorld, matrix: cameraToWorld}
}

// WithPerspective switches the camera to perspective projection, with
// vertical field of view fovyDeg and the given aspect ratio and
// near/far clip planes.
func (c Camera) WithPerspective(fovyDeg, aspect, near, far float64) Camera {
	ymax := near * math.Tan(fovyDeg*math.Pi/360)
	xmax := ymax * aspect

	t1 := 2 * near
	t2 := 2 * xmax
	t3 := 2 * ymax
	t4 := far - near

	projection := geo.Mat4{
		{t1 / t2, 0, 0, 0},
		{0, t1 / t3, 0, 0},
		{0, 0, (-far - near) / t4, -t1 * far / t4},
		{0, 0, -1, 0},
	}

	inv, ok := c.cameraToWorld.Inverse()
	if !ok {
		inv = geo.Identity()
	}
	c.matrix = projection.Mul(inv)
	return c
}

// WithOrthographic switches the camera to orthographic (isometric)
// projection over the given symmetric view volume.
func (c Camera) WithOrthographic(left, right, bottom, top, near, far float64) Camera {
	projection := geo.Mat4{
		{2 / (right - left), 0, 0, -(right + left) / (right - left)},
		{0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom)},
		{0, 0, -2 / (far - near), -(far + near) / (far - near)},
		{0, 0, 0, 1},
	}

	inv, ok := c.cameraToWorld.Inverse()
	if !ok {
		inv = geo.Identity()
	}
	c.matrix = projection.Mul(inv)
	return c
}

// Position returns the camera's world-space eye position.
func (c Camera) Position() geo.V3 { return c.position }

// Project maps a world-space point to NDC, dividing by the homogeneous
// w component.
func (c Camera) Project(v geo.V3) (geo.V3, bool) {
	m := c.matrix
	x := m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]
	y := m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]
	z := m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]
	w := m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]

	if w == 0 {
		return geo.V3{}, false
	}
	return geo.V3{X: x / w, Y: y / w, Z: z / w}, true
}
