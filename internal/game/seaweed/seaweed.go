// Package seaweed models swaying seaweed as chains of rigid segments. Each
// segment hinges on the top of the previous one and swings around Z with a
// phase lag, so a wave travels up the stalk.
package seaweed

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aquarium/internal/game/motion"
	"github.com/Faultbox/aquarium/pkg/transform"
)

// Segment is one link of a chain.
type Segment struct {
	LocalOffset mgl32.Vec3 // from this joint to the next, along local +Y
	Color       mgl32.Vec3
	Phase       float32
	Scale       mgl32.Vec3
}

// Chain is a seaweed stalk. It owns its segments.
type Chain struct {
	Base     mgl32.Vec3
	MaxSwing float32 // radians
	Omega    float32 // radians per second
	Segments []Segment
}

// Shape holds the parameters shared by the chains of a scene.
type Shape struct {
	Segments        int
	SegmentHeight   float32
	DelayPerSegment float32
	MaxSwing        float32
	Omega           float32
	Color           mgl32.Vec3
	Scale           mgl32.Vec3
}

// New builds a chain rooted at base. Segment i has phase i*DelayPerSegment.
func New(base mgl32.Vec3, s Shape) *Chain {
	c := &Chain{
		Base:     base,
		MaxSwing: s.MaxSwing,
		Omega:    s.Omega,
		Segments: make([]Segment, s.Segments),
	}
	for i := range c.Segments {
		c.Segments[i] = Segment{
			LocalOffset: mgl32.Vec3{0, s.SegmentHeight, 0},
			Color:       s.Color,
			Phase:       float32(i) * s.DelayPerSegment,
			Scale:       s.Scale,
		}
	}
	return c
}

// Angle returns the sway of segment i at time t.
func (c *Chain) Angle(i int, t float64) float32 {
	return motion.Sway(c.MaxSwing, c.Omega, t, c.Segments[i].Phase)
}

// Part is a drawable piece of a chain.
type Part struct {
	Transform mgl32.Mat4
	Color     mgl32.Vec3
}

// Parts walks the chain at time t and appends one part per segment to dst.
//
// Every segment rotates at its own joint, is drawn centred halfway along its
// offset, and hands its post-rotation frame, advanced by the offset, to the
// next segment.
func (c *Chain) Parts(dst []Part, t float64) []Part {
	parent := transform.At(c.Base)
	for i := range c.Segments {
		seg := &c.Segments[i]
		joint := parent.RotateZ(c.Angle(i, t))
		dst = append(dst, Part{
			Transform: joint.Translate(seg.LocalOffset.Mul(0.5)).Leaf(seg.Scale),
			Color:     seg.Color,
		})
		parent = joint.Translate(seg.LocalOffset)
	}
	return dst
}

// Tip returns the world position of the top of the chain at time t.
func (c *Chain) Tip(t float64) mgl32.Vec3 {
	parent := transform.At(c.Base)
	for i := range c.Segments {
		parent = parent.RotateZ(c.Angle(i, t)).Translate(c.Segments[i].LocalOffset)
	}
	return parent.Origin()
}
