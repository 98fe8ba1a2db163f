// Package player implements the user controlled fish: keyboard driven
// movement inside the tank, the tail beat and the timed mouth cycle.
package player

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aquarium/internal/game/control"
	"github.com/Faultbox/aquarium/internal/game/motion"
	"github.com/Faultbox/aquarium/internal/game/tank"
)

// Params configures a new player fish.
type Params struct {
	Position      mgl32.Vec3
	Speed         float32 // units per second
	RotationSpeed float32 // radians per second
	TailSpeed     float32
	TailAmplitude float32
	TailDelay     float32
	TailSegments  int
	MouthDuration float64
}

// Player is the user controlled fish.
type Player struct {
	Position      mgl32.Vec3
	Heading       float32 // yaw around +Y, radians
	Speed         float32
	RotationSpeed float32
	Tail          motion.Tail
	Mouth         motion.Mouth
	Teeth         [toothCount]motion.Tooth // head-local endpoints

	tailSegments int
}

// New creates the player fish facing +X with a closed mouth.
func New(p Params) *Player {
	return &Player{
		Position:      p.Position,
		Speed:         p.Speed,
		RotationSpeed: p.RotationSpeed,
		Tail: motion.Tail{
			Speed:     p.TailSpeed,
			Amplitude: p.TailAmplitude,
			Delay:     p.TailDelay,
		},
		Mouth:        motion.NewMouth(p.MouthDuration),
		Teeth:        restTeeth,
		tailSegments: p.TailSegments,
	}
}

// TailSegments returns the number of tail segments in the rig.
func (p *Player) TailSegments() int {
	return p.tailSegments
}

// Animate advances the tail beat and the mouth timer. It reports whether the
// mouth closed during this step.
func (p *Player) Animate(dt float64) bool {
	p.Tail.Advance(dt)
	return p.Mouth.Advance(dt)
}

// ToggleMouth handles the mouth key press. Opening while a cycle is running
// does nothing; the timer is the only way to close. It reports whether a new
// cycle started.
func (p *Player) ToggleMouth() bool {
	return p.Mouth.Open()
}

// Move applies the held movement keys for dt seconds and keeps the fish
// inside the tank. Movement is along the world axes and does not depend on
// the heading.
func (p *Player) Move(dt float32, in control.Input, b tank.Bounds) {
	var d mgl32.Vec3
	if in.IsKeyDown(control.Forward) {
		d[0]++
	}
	if in.IsKeyDown(control.Back) {
		d[0]--
	}
	if in.IsKeyDown(control.Left) {
		d[2]--
	}
	if in.IsKeyDown(control.Right) {
		d[2]++
	}
	if in.IsKeyDown(control.Up) {
		d[1]++
	}
	if in.IsKeyDown(control.Down) {
		d[1]--
	}
	if d != (mgl32.Vec3{}) {
		p.Position = p.Position.Add(d.Mul(p.Speed * dt))
	}
	p.Position = b.Clamp(p.Position)

	var turn float32
	if in.IsKeyDown(control.TurnLeft) {
		turn++
	}
	if in.IsKeyDown(control.TurnRight) {
		turn--
	}
	if turn != 0 {
		p.Heading = wrapAngle(p.Heading + turn*p.RotationSpeed*dt)
	}
}

// wrapAngle maps a to [-pi, pi].
func wrapAngle(a float32) float32 {
	return float32(gomath.Remainder(float64(a), 2*gomath.Pi))
}
