// Package transform builds 4x4 affine transforms from translate, rotate and
// scale steps and composes them into parent/child hierarchies.
//
// Matrices are mgl32.Mat4 (column-major, OpenGL compatible). Steps are
// post-multiplied, so the first step in a sequence is the outermost one:
// Compose(Translate(p), Rotate(a, Y)) rotates about the local origin and then
// moves to p.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Axes in model space.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

type opKind uint8

const (
	opTranslate opKind = iota
	opRotate
	opScale
)

// Op is a single primitive step of a transform sequence.
type Op struct {
	kind  opKind
	v     mgl32.Vec3
	angle float32
}

// Translate returns a translation step.
func Translate(v mgl32.Vec3) Op {
	return Op{kind: opTranslate, v: v}
}

// Rotate returns a rotation step of angle radians around axis.
// The axis does not need to be normalized.
func Rotate(angle float32, axis mgl32.Vec3) Op {
	return Op{kind: opRotate, v: axis, angle: angle}
}

// Scale returns a scale step.
func Scale(v mgl32.Vec3) Op {
	return Op{kind: opScale, v: v}
}

// Matrix returns the matrix of a single step.
func (o Op) Matrix() mgl32.Mat4 {
	switch o.kind {
	case opTranslate:
		return mgl32.Translate3D(o.v[0], o.v[1], o.v[2])
	case opRotate:
		if o.v.Len() == 0 {
			return mgl32.Ident4()
		}
		return mgl32.HomogRotate3D(o.angle, o.v.Normalize())
	case opScale:
		return mgl32.Scale3D(o.v[0], o.v[1], o.v[2])
	}
	return mgl32.Ident4()
}

// Compose applies ops left to right to the identity frame.
func Compose(ops ...Op) mgl32.Mat4 {
	return Apply(mgl32.Ident4(), ops...)
}

// Apply applies ops left to right to m.
func Apply(m mgl32.Mat4, ops ...Op) mgl32.Mat4 {
	for _, op := range ops {
		m = m.Mul4(op.Matrix())
	}
	return m
}
