package state

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the accumulated model-view transform. Every mutation post-multiplies, so rotations
// happen in the current (already transformed) frame, the way a fixed-function matrix stack behaves.
type Camera struct {
	Matrix  mgl32.Mat4
	initial mgl32.Mat4
}

// NewCamera returns a camera translated distance units back along -Z.
func NewCamera(distance float32) Camera {
	m := mgl32.Translate3D(0, 0, -distance)
	return Camera{Matrix: m, initial: m}
}

// Reset restores the initial transform.
func (c *Camera) Reset() {
	c.Matrix = c.initial
}

// Rotate post-multiplies a rotation of degrees about axis. A zero axis is ignored.
func (c *Camera) Rotate(degrees float32, axis mgl32.Vec3) {
	if axis.Len() == 0 {
		return
	}
	c.Matrix = c.Matrix.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis.Normalize()))
}

// Scale post-multiplies a uniform scale.
func (c *Camera) Scale(f float32) {
	c.Matrix = c.Matrix.Mul4(mgl32.Scale3D(f, f, f))
}

// OrbitAxis returns the drag rotation axis and angle for a pixel delta: the first two rows of the
// model-view basis weighted by (dy, dx), and sqrt(dx²+dy²) degrees. ok is false when there is nothing
// to rotate about (no movement, or a degenerate basis), in which case callers must skip the rotation.
func (c *Camera) OrbitAxis(dx, dy float32) (axis mgl32.Vec3, degrees float32, ok bool) {
	m := c.Matrix
	axis = mgl32.Vec3{
		m[0]*dy + m[1]*dx,
		m[4]*dy + m[5]*dx,
		m[8]*dy + m[9]*dx,
	}
	norm := axis.Len()
	degrees = math32.Hypot(dx, dy)
	if degrees == 0 || norm == 0 {
		return mgl32.Vec3{}, 0, false
	}
	return axis.Mul(1 / norm), degrees, true
}

// Orbit applies a mouse drag of (dx, dy) pixels. It reports false and leaves the camera untouched
// when OrbitAxis has no axis.
func (c *Camera) Orbit(dx, dy float32) bool {
	axis, deg, ok := c.OrbitAxis(dx, dy)
	if !ok {
		return false
	}
	c.Rotate(deg, axis)
	return true
}
