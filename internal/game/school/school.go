// Package school moves the autonomous fish. Each fish swims in a straight
// line and bounces off the walls of the frustum-shaped tank.
package school

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aquarium/internal/engine/mesh"
	"github.com/Faultbox/aquarium/internal/game/tank"
)

// Fish is one school fish. Direction is the only orientation state; the
// heading angle is always derived from it.
type Fish struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3 // unit length
	Speed     float32
	Kind      mesh.ID
	Scale     mgl32.Vec3
	Color     mgl32.Vec3
}

// HeadingAngle returns the yaw the fish faces, from the X/Z components of
// its direction only.
func (f *Fish) HeadingAngle() float32 {
	return Heading(f.Direction)
}

// Heading returns atan2(-d.z, d.x).
func Heading(d mgl32.Vec3) float32 {
	return float32(gomath.Atan2(float64(-d.Z()), float64(d.X())))
}

// Spawn describes a fish to create.
type Spawn struct {
	Kind     mesh.ID
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Color    mgl32.Vec3 // zero means random
}

// School is the set of autonomous fish.
type School struct {
	Fish []Fish

	bounces int
}

// New creates the school with random headings. drift bounds the vertical
// component of a heading before normalization.
func New(spawns []Spawn, speed, drift float32, rng *rand.Rand) *School {
	s := &School{Fish: make([]Fish, 0, len(spawns))}
	for _, sp := range spawns {
		color := sp.Color
		if color == (mgl32.Vec3{}) {
			color = mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
		}
		s.Fish = append(s.Fish, Fish{
			Position:  sp.Position,
			Direction: RandomHeading(rng, drift),
			Speed:     speed,
			Kind:      sp.Kind,
			Scale:     sp.Scale,
			Color:     color,
		})
	}
	return s
}

// RandomHeading returns a unit direction mostly in the XZ plane.
func RandomHeading(rng *rand.Rand, drift float32) mgl32.Vec3 {
	theta := rng.Float64() * 2 * gomath.Pi
	y := drift * (2*rng.Float32() - 1)
	d := mgl32.Vec3{float32(gomath.Cos(theta)), y, float32(-gomath.Sin(theta))}
	return d.Normalize()
}

// Update advances every fish by dt seconds and reflects it off the tank.
// It returns the number of wall reflections that happened.
func (s *School) Update(dt float64, b tank.Bounds) int {
	n := 0
	for i := range s.Fish {
		n += Step(&s.Fish[i], dt, b)
	}
	s.bounces += n
	return n
}

// Bounces returns the total number of reflections since creation.
func (s *School) Bounces() int {
	return s.bounces
}

// Step integrates one fish and applies the six wall checks. Depth is
// resolved first so the X and Y walls are evaluated at the final depth.
func Step(f *Fish, dt float64, b tank.Bounds) int {
	f.Position = f.Position.Add(f.Direction.Mul(f.Speed * float32(dt)))

	eps := b.Epsilon()
	n := 0

	zlo, zhi := b.Z()
	if bounce(&f.Position[2], &f.Direction[2], zlo, zhi, eps) {
		n++
	}
	z := f.Position.Z()

	xlo, xhi := b.X(z)
	if bounce(&f.Position[0], &f.Direction[0], xlo, xhi, eps) {
		n++
	}
	ylo, yhi := b.Y(z)
	if bounce(&f.Position[1], &f.Direction[1], ylo, yhi, eps) {
		n++
	}
	return n
}

// bounce handles both walls of one axis. On a crossing the direction
// component is pointed back inside and the position is placed eps inside
// the wall so the same wall does not fire again next frame. When the range
// is too narrow to hold the nudge, the fish is pinned to its centre.
func bounce(pos, dir *float32, lo, hi, eps float32) bool {
	if hi-lo <= 2*eps {
		if *pos < lo || *pos > hi {
			*pos = (lo + hi) / 2
			return true
		}
		return false
	}
	switch {
	case *pos > hi:
		*pos = hi - eps
		if *dir > 0 {
			*dir = -*dir
		}
		return true
	case *pos < lo:
		*pos = lo + eps
		if *dir < 0 {
			*dir = -*dir
		}
		return true
	}
	return false
}
