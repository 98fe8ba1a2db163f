package player

import (
	gomath "math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aquarium/internal/game/motion"
	"github.com/Faultbox/aquarium/pkg/transform"
)

// Part is one box of the player rig.
type Part struct {
	Name      string
	Transform mgl32.Mat4
	Color     mgl32.Vec3
}

const (
	toothUpperLeft = iota
	toothUpperRight
	toothLowerLeft
	toothLowerRight
	toothCount
)

var toothNames = [toothCount]string{
	"tooth_upper_left",
	"tooth_upper_right",
	"tooth_lower_left",
	"tooth_lower_right",
}

// Body dimensions. The body is a unit cube scaled by bodySize, so its front
// face sits at +bodySize.X/2 in the body frame.
var (
	bodySize   = mgl32.Vec3{5, 3, 2.5}
	headOffset = mgl32.Vec3{2.5, 0, 0}
)

// Tooth endpoints in the head frame. Upper teeth drop, lower teeth rise.
var restTeeth = [toothCount]motion.Tooth{
	toothUpperLeft:  {Rest: mgl32.Vec3{1.2, 0.1, -0.6}, Extended: mgl32.Vec3{1.2, -0.35, -0.6}},
	toothUpperRight: {Rest: mgl32.Vec3{1.2, 0.1, 0.6}, Extended: mgl32.Vec3{1.2, -0.35, 0.6}},
	toothLowerLeft:  {Rest: mgl32.Vec3{1.2, -0.9, -0.6}, Extended: mgl32.Vec3{1.2, -0.45, -0.6}},
	toothLowerRight: {Rest: mgl32.Vec3{1.2, -0.9, 0.6}, Extended: mgl32.Vec3{1.2, -0.45, 0.6}},
}

const (
	jawOpenAngle  = 0.35 // radians
	tailSegLength = 1.2
)

var (
	bodyColor  = mgl32.Vec3{0.4, 0.4, 0.6}
	jawColor   = mgl32.Vec3{0.5, 0.5, 0.7}
	finColor   = mgl32.Vec3{0.35, 0.35, 0.55}
	toothColor = mgl32.Vec3{1, 1, 1}
	eyeColor   = mgl32.Vec3{1, 1, 1}
	pupilColor = mgl32.Vec3{0, 0, 0}
)

// BodyFrame returns the unscaled frame every part hangs from.
func (p *Player) BodyFrame() transform.Frame {
	return transform.At(p.Position).RotateY(p.Heading)
}

// HeadFrame returns the frame the jaws hinge on and the teeth live in.
func (p *Player) HeadFrame() transform.Frame {
	return p.BodyFrame().Translate(headOffset)
}

// Rig appends the draw parts of the fish to dst. Teeth are only emitted
// while the mouth is open.
func (p *Player) Rig(dst []Part) []Part {
	body := p.BodyFrame()
	dst = append(dst, Part{"body", body.Leaf(bodySize), bodyColor})

	head := p.HeadFrame()
	var jaw float32
	if p.Mouth.IsOpen() {
		jaw = jawOpenAngle
	}
	dst = append(dst,
		Part{"upper_jaw", head.RotateZ(jaw).Translate(mgl32.Vec3{0.75, 0.5, 0}).Leaf(mgl32.Vec3{1.5, 1, 2.2}), jawColor},
		Part{"lower_jaw", head.RotateZ(-jaw).Translate(mgl32.Vec3{0.75, -0.75, 0}).Leaf(mgl32.Vec3{1.5, 0.5, 2.2}), jawColor},
	)
	if p.Mouth.IsOpen() {
		f := p.Mouth.Extension()
		for i, t := range p.Teeth {
			dst = append(dst, Part{toothNames[i], head.Translate(t.At(f)).Leaf(mgl32.Vec3{0.2, 0.4, 0.2}), toothColor})
		}
	}

	for _, side := range [2]struct {
		name string
		z    float32
	}{{"left", -1}, {"right", 1}} {
		eye := body.Translate(mgl32.Vec3{1.6, 0.6, side.z * bodySize.Z() / 2})
		dst = append(dst,
			Part{"eye_" + side.name, eye.Leaf(mgl32.Vec3{0.5, 0.5, 0.2}), eyeColor},
			Part{"pupil_" + side.name, eye.Translate(mgl32.Vec3{0.1, 0, side.z * 0.12}).Leaf(mgl32.Vec3{0.25, 0.25, 0.1}), pupilColor},
		)
	}

	dst = append(dst, Part{"dorsal_fin", body.Translate(mgl32.Vec3{0, 2, 0}).RotateZ(mgl32.DegToRad(-50)).Leaf(mgl32.Vec3{3, 1.5, 1}), finColor})
	for _, side := range [2]struct {
		name string
		z    float32
	}{{"left", -1}, {"right", 1}} {
		fin := body.Translate(mgl32.Vec3{0.5, -1, side.z * bodySize.Z() / 2}).RotateX(-side.z * 0.6)
		dst = append(dst, Part{"pectoral_fin_" + side.name, fin.Translate(mgl32.Vec3{0, 0, side.z * 0.5}).Leaf(mgl32.Vec3{1.2, 0.15, 1}), finColor})
	}

	joint := body.Translate(mgl32.Vec3{-bodySize.X() / 2, 0, 0})
	for i := 0; i < p.tailSegments; i++ {
		joint = joint.RotateY(p.Tail.Angle(i))
		taper := float32(gomath.Pow(0.8, float64(i)))
		size := mgl32.Vec3{tailSegLength, 2 * taper, 1.2 * taper}
		dst = append(dst, Part{tailName(i), joint.Translate(mgl32.Vec3{-tailSegLength / 2, 0, 0}).Leaf(size), bodyColor})
		joint = joint.Translate(mgl32.Vec3{-tailSegLength, 0, 0})
	}
	dst = append(dst, Part{"tail_fin", joint.Translate(mgl32.Vec3{-0.4, 0, 0}).Leaf(mgl32.Vec3{0.8, 2.5, 0.2}), finColor})
	return dst
}

func tailName(i int) string {
	return "tail_" + strconv.Itoa(i)
}
