// Package camera provides the fixed aquarium camera.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Eye at Target.
//
// The projection depends on the viewport, so Resize must be called whenever
// the framebuffer size changes. The tank walls are derived from the same
// lens.
type Camera struct {
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	fovY   float32 // radians
	near   float32
	far    float32
	width  int
	height int
}

// New creates a camera with a vertical field of view in degrees.
func New(eye, target mgl32.Vec3, fovDegrees, near, far float32, width, height int) *Camera {
	c := &Camera{
		eye:    eye,
		target: target,
		up:     mgl32.Vec3{0, 1, 0},
		fovY:   mgl32.DegToRad(fovDegrees),
		near:   near,
		far:    far,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the viewport. Non-positive sizes, as reported for a
// minimized window, are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
}

// Viewport returns the current viewport size.
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.eye
}

// Target returns the point the camera looks at.
func (c *Camera) Target() mgl32.Vec3 {
	return c.target
}

// FovY returns the vertical field of view in radians.
func (c *Camera) FovY() float32 {
	return c.fovY
}

// Aspect returns width/height of the viewport, or 1 before the first resize.
func (c *Camera) Aspect() float32 {
	if c.width <= 0 || c.height <= 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// Near returns the near clip distance.
func (c *Camera) Near() float32 {
	return c.near
}

// Far returns the far clip distance.
func (c *Camera) Far() float32 {
	return c.far
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.target, c.up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.fovY, c.Aspect(), c.near, c.far)
}
