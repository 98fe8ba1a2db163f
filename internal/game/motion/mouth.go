package motion

import (
	"github.com/go-gl/mathgl/mgl32"
)

// timerSlack absorbs float accumulation error when summing frame deltas up to
// the cycle duration.
const timerSlack = 1e-9

// Mouth is the open/close cycle of the player fish.
//
// Opening is user triggered. Once open the mouth closes itself after
// Duration seconds.
type Mouth struct {
	Duration float64

	open    bool
	elapsed float64
}

// NewMouth creates a closed mouth with the given cycle length in seconds.
func NewMouth(duration float64) Mouth {
	return Mouth{Duration: duration}
}

// Open starts a cycle. It reports false when the mouth was already open, in
// which case the running cycle is left untouched.
func (m *Mouth) Open() bool {
	if m.open {
		return false
	}
	m.open = true
	m.elapsed = 0
	return true
}

// Advance accumulates dt while open and closes the mouth once the cycle has
// run for Duration seconds. It reports whether the mouth closed on this call.
func (m *Mouth) Advance(dt float64) bool {
	if !m.open {
		return false
	}
	if dt > 0 {
		m.elapsed += dt
	}
	if m.elapsed+timerSlack >= m.Duration {
		m.open = false
		m.elapsed = 0
		return true
	}
	return false
}

// IsOpen reports whether a cycle is running.
func (m *Mouth) IsOpen() bool {
	return m.open
}

// Elapsed returns seconds since the current cycle started.
func (m *Mouth) Elapsed() float64 {
	return m.elapsed
}

// Extension returns the tooth extension fraction in [0, 1].
// A non-positive duration counts as fully extended.
func (m *Mouth) Extension() float32 {
	if m.Duration <= 0 {
		return 1
	}
	return mgl32.Clamp(float32(m.elapsed/m.Duration), 0, 1)
}

// Tooth holds the two endpoints a tooth slides between, in the space of the
// frame they were resolved in.
type Tooth struct {
	Rest     mgl32.Vec3
	Extended mgl32.Vec3
}

// At returns the tooth position at extension fraction f.
func (t Tooth) At(f float32) mgl32.Vec3 {
	return Lerp(t.Rest, t.Extended, f)
}

// Lerp interpolates linearly between a and b. t is clamped to [0, 1].
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	t = mgl32.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}
