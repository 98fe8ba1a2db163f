package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is a rigid (translate + rotate) coordinate frame.
//
// A Frame never carries scale. Children are derived from the parent Frame and
// scale is only applied by Leaf, as the last step of a draw matrix, so a
// parent's anisotropic scale cannot distort its children.
type Frame struct {
	m mgl32.Mat4
}

// Root returns the identity frame.
func Root() Frame {
	return Frame{m: mgl32.Ident4()}
}

// At returns a frame translated to p.
func At(p mgl32.Vec3) Frame {
	return Root().Translate(p)
}

// Translate returns f moved by v in f's local space.
func (f Frame) Translate(v mgl32.Vec3) Frame {
	return Frame{m: f.m.Mul4(Translate(v).Matrix())}
}

// Rotate returns f rotated by angle radians around the local axis.
func (f Frame) Rotate(angle float32, axis mgl32.Vec3) Frame {
	return Frame{m: f.m.Mul4(Rotate(angle, axis).Matrix())}
}

// RotateX rotates around the local X axis.
func (f Frame) RotateX(angle float32) Frame {
	return Frame{m: f.m.Mul4(mgl32.HomogRotate3DX(angle))}
}

// RotateY rotates around the local Y axis.
func (f Frame) RotateY(angle float32) Frame {
	return Frame{m: f.m.Mul4(mgl32.HomogRotate3DY(angle))}
}

// RotateZ rotates around the local Z axis.
func (f Frame) RotateZ(angle float32) Frame {
	return Frame{m: f.m.Mul4(mgl32.HomogRotate3DZ(angle))}
}

// Leaf returns the draw matrix for a part at this frame with the given size.
func (f Frame) Leaf(scale mgl32.Vec3) mgl32.Mat4 {
	return f.m.Mul4(Scale(scale).Matrix())
}

// Matrix returns the unscaled frame matrix.
func (f Frame) Matrix() mgl32.Mat4 {
	return f.m
}

// Point maps a point from local space to the parent space of the frame.
func (f Frame) Point(local mgl32.Vec3) mgl32.Vec3 {
	return f.m.Mul4x1(local.Vec4(1)).Vec3()
}

// Origin returns the frame origin in parent space.
func (f Frame) Origin() mgl32.Vec3 {
	return f.m.Col(3).Vec3()
}
