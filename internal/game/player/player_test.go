package player

import (
	gomath "math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/aquarium/internal/game/control"
	"github.com/Faultbox/aquarium/internal/game/tank"
)

type lens struct{}

func (lens) Eye() mgl32.Vec3 { return mgl32.Vec3{0, 10, 25} }
func (lens) FovY() float32   { return mgl32.DegToRad(45) }
func (lens) Aspect() float32 { return 800.0 / 600.0 }

func testBounds() tank.Bounds {
	return tank.New(tank.Config{Margin: 2, MinZ: -15, MaxZ: 10, Epsilon: 0.01}, lens{})
}

func testPlayer() *Player {
	return New(Params{
		Position:      mgl32.Vec3{0, 5, 0},
		Speed:         5,
		RotationSpeed: 2,
		TailSpeed:     5,
		TailAmplitude: 0.35,
		TailDelay:     0.6,
		TailSegments:  3,
		MouthDuration: 1,
	})
}

func TestMoveAlongWorldAxes(t *testing.T) {
	tests := []struct {
		name string
		keys control.Keys
		want mgl32.Vec3
	}{
		{"forward", control.Keys{control.Forward: true}, mgl32.Vec3{0.5, 5, 0}},
		{"back", control.Keys{control.Back: true}, mgl32.Vec3{-0.5, 5, 0}},
		{"left", control.Keys{control.Left: true}, mgl32.Vec3{0, 5, -0.5}},
		{"right", control.Keys{control.Right: true}, mgl32.Vec3{0, 5, 0.5}},
		{"up", control.Keys{control.Up: true}, mgl32.Vec3{0, 5.5, 0}},
		{"down", control.Keys{control.Down: true}, mgl32.Vec3{0, 4.5, 0}},
		{"forward and back cancel", control.Keys{control.Forward: true, control.Back: true}, mgl32.Vec3{0, 5, 0}},
		{"none", control.Keys{}, mgl32.Vec3{0, 5, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			p.Move(0.1, tt.keys, testBounds())
			assert.InDeltaf(t, 0, p.Position.Sub(tt.want).Len(), 1e-5, "got %v, want %v", p.Position, tt.want)
		})
	}
}

func TestMoveIgnoresHeading(t *testing.T) {
	p := testPlayer()
	p.Heading = 1.2
	p.Move(0.1, control.Keys{control.Forward: true}, testBounds())
	assert.InDelta(t, 0.5, p.Position.X(), 1e-5)
	assert.InDelta(t, 0, p.Position.Z(), 1e-5)
}

func TestClampBelowLowerBoundIsExact(t *testing.T) {
	b := testBounds()
	p := testPlayer()
	ylo, _ := b.Y(p.Position.Z())
	p.Position[1] = ylo - 3

	p.Move(1.0/60.0, control.Keys{control.Down: true}, b)
	assert.Equal(t, ylo, p.Position.Y())
	assert.True(t, b.Contains(p.Position, 0))
}

func TestClampUsesPlayerDepth(t *testing.T) {
	b := testBounds()
	p := testPlayer()
	p.Position = mgl32.Vec3{1000, 5, 1000}
	p.Move(0, control.None, b)

	_, zhi := b.Z()
	_, xhi := b.X(zhi)
	assert.Equal(t, zhi, p.Position.Z())
	assert.Equal(t, xhi, p.Position.X())
}

func TestTurn(t *testing.T) {
	p := testPlayer()
	p.Move(0.5, control.Keys{control.TurnLeft: true}, testBounds())
	assert.InDelta(t, 1.0, p.Heading, 1e-6)
	p.Move(0.25, control.Keys{control.TurnRight: true}, testBounds())
	assert.InDelta(t, 0.5, p.Heading, 1e-6)

	// Heading stays wrapped.
	for i := 0; i < 100; i++ {
		p.Move(0.1, control.Keys{control.TurnLeft: true}, testBounds())
		assert.LessOrEqual(t, float64(gomath.Abs(float64(p.Heading))), gomath.Pi+1e-6)
	}
}

func TestAnimateAdvancesTail(t *testing.T) {
	p := testPlayer()
	p.Animate(0.5)
	assert.InDelta(t, 2.5, p.Tail.Phase, 1e-9)
}

func TestToggleMouth(t *testing.T) {
	p := testPlayer()
	assert.False(t, p.Mouth.IsOpen())
	assert.True(t, p.ToggleMouth())
	p.Animate(0.4)
	assert.False(t, p.ToggleMouth())
	assert.InDelta(t, 0.4, p.Mouth.Elapsed(), 1e-9)

	closed := p.Animate(0.6)
	assert.True(t, closed)
	assert.False(t, p.Mouth.IsOpen())
}

func partNames(parts []Part) []string {
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.Name
	}
	return names
}

func TestRigClosed(t *testing.T) {
	p := testPlayer()
	parts := p.Rig(nil)
	assert.Equal(t, []string{
		"body", "upper_jaw", "lower_jaw",
		"eye_left", "pupil_left", "eye_right", "pupil_right",
		"dorsal_fin", "pectoral_fin_left", "pectoral_fin_right",
		"tail_0", "tail_1", "tail_2", "tail_fin",
	}, partNames(parts))
}

func TestRigOpenHasTeeth(t *testing.T) {
	p := testPlayer()
	p.ToggleMouth()
	parts := p.Rig(nil)
	require.Len(t, parts, 18)
	assert.Equal(t, []string{
		"tooth_upper_left", "tooth_upper_right", "tooth_lower_left", "tooth_lower_right",
	}, partNames(parts[3:7]))
}

func TestChildrenIgnoreBodyScale(t *testing.T) {
	p := testPlayer()
	p.Heading = 0.7
	for _, part := range p.Rig(nil) {
		if part.Name != "eye_left" {
			continue
		}
		// An eye keeps its own size whatever the body is scaled by.
		assert.InDelta(t, 0.5, part.Transform.Col(0).Vec3().Len(), 1e-5)
		assert.InDelta(t, 0.5, part.Transform.Col(1).Vec3().Len(), 1e-5)
		assert.InDelta(t, 0.2, part.Transform.Col(2).Vec3().Len(), 1e-5)
		return
	}
	t.Fatal("eye_left not found")
}

// teethInRig returns the world origin of every tooth part Rig emits.
func teethInRig(t *testing.T, p *Player) []mgl32.Vec3 {
	t.Helper()
	var out []mgl32.Vec3
	for _, part := range p.Rig(nil) {
		if strings.HasPrefix(part.Name, "tooth_") {
			out = append(out, part.Transform.Col(3).Vec3())
		}
	}
	require.Len(t, out, toothCount)
	return out
}

func TestTeethSitInHeadFrame(t *testing.T) {
	p := testPlayer()
	p.Position = mgl32.Vec3{3, 4, -2}
	p.Heading = 0.8
	p.ToggleMouth()
	p.Animate(0.3)

	head := p.HeadFrame()
	f := p.Mouth.Extension()
	for i, got := range teethInRig(t, p) {
		want := head.Point(p.Teeth[i].At(f))
		assert.InDeltaf(t, 0, got.Sub(want).Len(), 1e-5, "tooth %d: %v, want %v", i, got, want)
	}
}

func TestTeethFollowHead(t *testing.T) {
	p := testPlayer()
	p.ToggleMouth()
	p.Animate(0.5)

	before := teethInRig(t, p)
	p.Position = p.Position.Add(mgl32.Vec3{1, 2, 3})
	after := teethInRig(t, p)
	for i := range before {
		assert.InDeltaf(t, 0, after[i].Sub(before[i]).Sub(mgl32.Vec3{1, 2, 3}).Len(), 1e-4, "tooth %d", i)
	}

	// Half a turn puts the teeth behind the body origin.
	p.Heading = float32(gomath.Pi)
	for i, w := range teethInRig(t, p) {
		assert.Lessf(t, w.X(), p.Position.X(), "tooth %d", i)
	}
}

func TestTeethMoveMonotonically(t *testing.T) {
	p := testPlayer()
	p.ToggleMouth()
	start := teethInRig(t, p)
	prev := start
	for i := 0; i < 59; i++ {
		p.Animate(1.0 / 60.0)
		require.True(t, p.Mouth.IsOpen())
		cur := teethInRig(t, p)
		for k := range cur {
			total := p.Teeth[k].Extended.Sub(p.Teeth[k].Rest)
			assert.GreaterOrEqualf(t, cur[k].Sub(start[k]).Dot(total), prev[k].Sub(start[k]).Dot(total)-1e-6, "tooth %d frame %d", k, i)
		}
		prev = cur
	}
}

func TestTailBendsSegments(t *testing.T) {
	p := testPlayer()
	p.Tail.Phase = gomath.Pi / 2
	var tail []Part
	for _, part := range p.Rig(nil) {
		if len(part.Name) > 5 && part.Name[:5] == "tail_" && part.Name != "tail_fin" {
			tail = append(tail, part)
		}
	}
	require.Len(t, tail, 3)
	// The first segment swings by the full amplitude around Y.
	fwd := tail[0].Transform.Col(0).Vec3().Normalize()
	got := gomath.Atan2(-float64(fwd.Z()), float64(fwd.X()))
	assert.InDelta(t, 0.35, got, 1e-4)
}
