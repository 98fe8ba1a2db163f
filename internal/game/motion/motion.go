// Package motion provides the time-driven oscillators that animate the
// aquarium: the shared scene clock, seaweed sway, tail beat and the
// fixed-duration mouth cycle with tooth extension.
package motion

import (
	gomath "math"
)

// Clock is the scene-wide monotonic clock.
//
// It is advanced once per frame and every oscillator reads the same captured
// value for the whole frame.
type Clock struct {
	now float64
}

// Advance moves the clock forward by dt seconds. Negative deltas are ignored.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.now += dt
	}
}

// Now returns seconds since the session started.
func (c *Clock) Now() float64 {
	return c.now
}

// Sway returns the swing angle in radians of a joint with the given phase
// offset at time t.
func Sway(maxSwing, omega float32, t float64, phase float32) float32 {
	return maxSwing * float32(gomath.Sin(float64(omega)*t+float64(phase)))
}

// Tail is the player's tail beat oscillator.
type Tail struct {
	Phase     float64 // radians, grows forever
	Speed     float32 // radians per second
	Amplitude float32 // max segment angle, radians
	Delay     float32 // phase lag per segment
}

// Advance adds dt*Speed to the phase. It runs whether or not the fish moves.
func (t *Tail) Advance(dt float64) {
	t.Phase += dt * float64(t.Speed)
}

// Angle returns the sway angle of tail segment i.
func (t *Tail) Angle(i int) float32 {
	return t.Amplitude * float32(gomath.Sin(t.Phase-float64(i)*float64(t.Delay)))
}
