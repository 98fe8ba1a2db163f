// Package tank defines the aquarium volume.
//
// The tank is not a box. Its X and Y extents follow the camera's viewing
// pyramid so fish stay inside the visible part of the scene: at depth z the
// half-width is (apexZ - z) * tan(fovY/2) * aspect - margin and the
// half-height is (apexZ - z) * tan(fovY/2) - margin, centred on the camera
// eye. Z is limited by a fixed near/far pair and Y never drops below the
// floor.
package tank

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lens is the camera information the tank is derived from.
type Lens interface {
	Eye() mgl32.Vec3
	FovY() float32 // radians
	Aspect() float32
}

// Config holds the fixed part of the tank geometry.
type Config struct {
	Margin  float32 // distance kept from the frustum walls
	MinZ    float32 // back wall
	MaxZ    float32 // front wall
	Epsilon float32 // nudge applied after a reflection
	Floor   float32 // lowest Y a swimmer may reach
}

// Bounds is the tank volume for one frame.
type Bounds struct {
	cfg     Config
	apex    mgl32.Vec3
	tanHalf float32
	aspect  float32
}

// New evaluates the tank for the current lens.
func New(cfg Config, lens Lens) Bounds {
	aspect := lens.Aspect()
	if aspect <= 0 || gomath.IsNaN(float64(aspect)) {
		aspect = 1
	}
	return Bounds{
		cfg:     cfg,
		apex:    lens.Eye(),
		tanHalf: float32(gomath.Tan(float64(lens.FovY()) / 2)),
		aspect:  aspect,
	}
}

// Epsilon returns the reflection nudge distance.
func (b Bounds) Epsilon() float32 {
	return b.cfg.Epsilon
}

// Center returns the X/Y axis of the tank.
func (b Bounds) Center() (x, y float32) {
	return b.apex.X(), b.apex.Y()
}

// HalfWidth returns the X half-extent at depth z. It never goes negative.
func (b Bounds) HalfWidth(z float32) float32 {
	return nonNegative((b.apex.Z()-z)*b.tanHalf*b.aspect - b.cfg.Margin)
}

// HalfHeight returns the Y half-extent at depth z. It never goes negative.
func (b Bounds) HalfHeight(z float32) float32 {
	return nonNegative((b.apex.Z()-z)*b.tanHalf - b.cfg.Margin)
}

// X returns the allowed X range at depth z.
func (b Bounds) X(z float32) (lo, hi float32) {
	h := b.HalfWidth(z)
	return b.apex.X() - h, b.apex.X() + h
}

// Y returns the allowed Y range at depth z. The lower end is raised to the
// floor where the pyramid reaches below it, but never above the upper end.
func (b Bounds) Y(z float32) (lo, hi float32) {
	h := b.HalfHeight(z)
	lo, hi = b.apex.Y()-h, b.apex.Y()+h
	if lo < b.cfg.Floor {
		lo = min(b.cfg.Floor, hi)
	}
	return lo, hi
}

// Z returns the allowed depth range.
func (b Bounds) Z() (lo, hi float32) {
	return b.cfg.MinZ, b.cfg.MaxZ
}

// Contains reports whether p lies inside the tank, with tolerance tol on
// every wall.
func (b Bounds) Contains(p mgl32.Vec3, tol float32) bool {
	zlo, zhi := b.Z()
	if p.Z() < zlo-tol || p.Z() > zhi+tol {
		return false
	}
	xlo, xhi := b.X(p.Z())
	if p.X() < xlo-tol || p.X() > xhi+tol {
		return false
	}
	ylo, yhi := b.Y(p.Z())
	return p.Y() >= ylo-tol && p.Y() <= yhi+tol
}

// Clamp returns p moved onto the nearest point of the tank. Depth is clamped
// first so the X/Y extents are evaluated at the final depth.
func (b Bounds) Clamp(p mgl32.Vec3) mgl32.Vec3 {
	zlo, zhi := b.Z()
	z := mgl32.Clamp(p.Z(), zlo, zhi)
	xlo, xhi := b.X(z)
	ylo, yhi := b.Y(z)
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), xlo, xhi),
		mgl32.Clamp(p.Y(), ylo, yhi),
		z,
	}
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
