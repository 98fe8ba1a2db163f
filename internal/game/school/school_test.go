package school

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/aquarium/internal/engine/mesh"
	"github.com/Faultbox/aquarium/internal/game/tank"
)

type lens struct{}

func (lens) Eye() mgl32.Vec3 { return mgl32.Vec3{0, 10, 25} }
func (lens) FovY() float32   { return mgl32.DegToRad(45) }
func (lens) Aspect() float32 { return 4.0 / 3.0 }

func testBounds() tank.Bounds {
	return tank.New(tank.Config{Margin: 2, MinZ: -15, MaxZ: 10, Epsilon: 0.01}, lens{})
}

func testSchool(t *testing.T, n int, seed int64) *School {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	spawns := make([]Spawn, n)
	for i := range spawns {
		spawns[i] = Spawn{
			Kind:     mesh.ID(1 + i%3),
			Position: mgl32.Vec3{0, 10, 0},
			Scale:    mgl32.Vec3{2, 2, 2},
		}
	}
	return New(spawns, 6, 0.5, rng)
}

func TestNewSchool(t *testing.T) {
	s := testSchool(t, 9, 1)
	require.Len(t, s.Fish, 9)
	for i, f := range s.Fish {
		assert.InDeltaf(t, 1, f.Direction.Len(), 1e-5, "fish %d direction should be unit", i)
		assert.Truef(t, f.Kind.IsFish(), "fish %d kind %v", i, f.Kind)
		assert.NotEqual(t, mgl32.Vec3{}, f.Color, "zero color should be randomized")
	}
}

func TestNewSchoolKeepsColor(t *testing.T) {
	c := mgl32.Vec3{1, 0.5, 0.3}
	s := New([]Spawn{{Kind: mesh.Fish1, Color: c}}, 3, 0, rand.New(rand.NewSource(2)))
	assert.Equal(t, c, s.Fish[0].Color)
	assert.InDelta(t, 0, s.Fish[0].Direction.Y(), 1e-6, "zero drift keeps the heading flat")
}

func TestHeadingMatchesDirectionAfterManySteps(t *testing.T) {
	s := testSchool(t, 12, 3)
	b := testBounds()
	for frame := 0; frame < 2000; frame++ {
		s.Update(1.0/60.0, b)
		for i := range s.Fish {
			f := &s.Fish[i]
			want := gomath.Atan2(float64(-f.Direction.Z()), float64(f.Direction.X()))
			require.InDeltaf(t, want, f.HeadingAngle(), 1e-6, "frame %d fish %d", frame, i)
		}
	}
	assert.Greater(t, s.Bounces(), 0, "fish should have hit a wall in 2000 frames")
}

func TestFishStayInsideTank(t *testing.T) {
	s := testSchool(t, 12, 4)
	b := testBounds()
	// Large steps make the fish overshoot the walls.
	for frame := 0; frame < 1000; frame++ {
		s.Update(0.2, b)
		for i, f := range s.Fish {
			require.Truef(t, b.Contains(f.Position, 1e-4),
				"frame %d fish %d escaped: %v", frame, i, f.Position)
		}
	}
}

func TestReflectOffRightWall(t *testing.T) {
	b := testBounds()
	z := float32(0)
	_, hi := b.X(z)

	f := Fish{
		Position:  mgl32.Vec3{hi + 0.5, 10, z},
		Direction: mgl32.Vec3{1, 0, 0},
		Speed:     0,
	}
	n := Step(&f, 1.0/60.0, b)

	assert.Equal(t, 1, n)
	assert.Equal(t, float32(-1), f.Direction.X())
	assert.InDelta(t, hi-b.Epsilon(), f.Position.X(), 1e-6)
	assert.InDelta(t, gomath.Pi, gomath.Abs(float64(f.HeadingAngle())), 1e-6)

	// Next frame it swims away without another bounce.
	f.Speed = 3
	assert.Equal(t, 0, Step(&f, 1.0/60.0, b))
}

func TestReflectOffLeftWallMovingInwardKeepsDirection(t *testing.T) {
	b := testBounds()
	lo, _ := b.X(0)
	f := Fish{Position: mgl32.Vec3{lo - 1, 10, 0}, Direction: mgl32.Vec3{1, 0, 0}}

	Step(&f, 0, b)
	assert.Equal(t, float32(1), f.Direction.X(), "a fish already heading inside keeps its direction")
	assert.InDelta(t, lo+b.Epsilon(), f.Position.X(), 1e-6)
}

func TestCornerReflectsBothAxes(t *testing.T) {
	b := testBounds()
	zlo, _ := b.Z()
	xlo, _ := b.X(zlo)
	d := mgl32.Vec3{-1, 0, -1}.Normalize()
	f := Fish{Position: mgl32.Vec3{xlo - 0.1, 10, zlo - 0.1}, Direction: d}

	n := Step(&f, 0, b)
	assert.Equal(t, 2, n)
	assert.Greater(t, f.Direction.X(), float32(0))
	assert.Greater(t, f.Direction.Z(), float32(0))
	assert.InDelta(t, 1, f.Direction.Len(), 1e-6)
	assert.InDelta(t, Heading(f.Direction), f.HeadingAngle(), 0)
}

func TestVerticalBounceKeepsHeading(t *testing.T) {
	b := testBounds()
	_, hi := b.Y(0)
	f := Fish{Position: mgl32.Vec3{0, hi + 1, 0}, Direction: mgl32.Vec3{0.6, 0.8, 0}}
	before := f.HeadingAngle()

	Step(&f, 0, b)
	assert.Equal(t, float32(-0.8), f.Direction.Y())
	assert.Equal(t, before, f.HeadingAngle())
}

func TestApexPinsToCentre(t *testing.T) {
	// With the front wall at the camera the tank has no width there.
	b := tank.New(tank.Config{Margin: 0, MinZ: -15, MaxZ: 25, Epsilon: 0.01}, lens{})
	f := Fish{Position: mgl32.Vec3{3, 14, 25}, Direction: mgl32.Vec3{1, 0, 0}}

	Step(&f, 0, b)
	assert.Equal(t, float32(0), f.Position.X())
	assert.Equal(t, float32(10), f.Position.Y())
	assert.False(t, gomath.IsNaN(float64(f.Position.X())))
}

func TestIntegration(t *testing.T) {
	b := testBounds()
	f := Fish{Position: mgl32.Vec3{0, 10, 0}, Direction: mgl32.Vec3{0, 0, -1}, Speed: 3}
	Step(&f, 0.5, b)
	assert.InDelta(t, -1.5, f.Position.Z(), 1e-6)
}

func TestNewRNGReplaysSeed(t *testing.T) {
	a, seed := NewRNG(42)
	assert.Equal(t, int64(42), seed)
	b, _ := NewRNG(42)
	assert.Equal(t, a.Int63(), b.Int63(), "equal seeds should give equal sequences")

	_, seed = NewRNG(0)
	assert.NotZero(t, seed, "zero seed should be replaced")
}
