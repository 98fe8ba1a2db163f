// Package scene holds the aquarium state and turns it into a flat list of
// draw commands every frame.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/aquarium/internal/config"
	"github.com/Faultbox/aquarium/internal/engine/mesh"
	"github.com/Faultbox/aquarium/internal/game/control"
	"github.com/Faultbox/aquarium/internal/game/motion"
	"github.com/Faultbox/aquarium/internal/game/player"
	"github.com/Faultbox/aquarium/internal/game/school"
	"github.com/Faultbox/aquarium/internal/game/seaweed"
	"github.com/Faultbox/aquarium/internal/game/tank"
	"github.com/Faultbox/aquarium/internal/logger"
	"github.com/Faultbox/aquarium/pkg/transform"
)

// State is everything that changes during an aquarium session.
type State struct {
	clock   motion.Clock
	lens    tank.Lens
	tankCfg tank.Config
	input   control.Input

	base    DrawCommand
	seaweed []*seaweed.Chain
	school  *school.School
	player  *player.Player

	log *zap.Logger

	// scratch buffers reused by Render
	weedParts   []seaweed.Part
	playerParts []player.Part
}

// New builds the session state from cfg. The tank follows lens, so a
// resized camera changes the walls from the next Update on. input may be nil
// for a scene that nobody steers.
func New(cfg *config.Config, lens tank.Lens, input control.Input, rng *rand.Rand) (*State, error) {
	if input == nil {
		input = control.None
	}
	s := &State{
		lens: lens,
		tankCfg: tank.Config{
			Margin:  cfg.Tank.Margin,
			MinZ:    cfg.Tank.MinZ,
			MaxZ:    cfg.Tank.MaxZ,
			Epsilon: cfg.Tank.Epsilon,
			Floor:   cfg.Tank.Floor,
		},
		input: input,
		log:   logger.Named("scene"),
	}

	// The floor slab is centred under the origin with its top face at y=0,
	// where the seaweed is rooted.
	s.base = DrawCommand{
		Part:      "base",
		Mesh:      mesh.Base,
		Transform: transform.At(mgl32.Vec3{0, -cfg.Tank.BaseScale.Y() / 2, 0}).Leaf(cfg.Tank.BaseScale),
		Color:     cfg.Tank.BaseColor,
	}

	shape := seaweed.Shape{
		Segments:        cfg.Seaweed.Segments,
		SegmentHeight:   cfg.Seaweed.SegmentHeight,
		DelayPerSegment: cfg.Seaweed.DelayPerSegment,
		MaxSwing:        cfg.Seaweed.MaxSwing,
		Omega:           cfg.Seaweed.Omega,
		Color:           cfg.Seaweed.Color,
		Scale:           cfg.Seaweed.Scale,
	}
	for _, pos := range cfg.Seaweed.Positions {
		s.seaweed = append(s.seaweed, seaweed.New(pos, shape))
	}

	spawns := make([]school.Spawn, 0, len(cfg.School.Fish))
	for i, f := range cfg.School.Fish {
		kind, err := mesh.ParseID(f.Kind)
		if err != nil {
			return nil, fmt.Errorf("school fish %d: %w", i, err)
		}
		if !kind.IsFish() {
			return nil, fmt.Errorf("school fish %d: mesh %s is not a fish", i, kind)
		}
		spawns = append(spawns, school.Spawn{
			Kind:     kind,
			Position: f.Position,
			Scale:    f.Scale,
			Color:    f.Color,
		})
	}
	s.school = school.New(spawns, cfg.School.Speed, cfg.School.VerticalDrift, rng)

	s.player = player.New(player.Params{
		Position:      cfg.Player.Position,
		Speed:         cfg.Player.Speed,
		RotationSpeed: cfg.Player.RotationSpeed,
		TailSpeed:     cfg.Player.TailSpeed,
		TailAmplitude: cfg.Player.TailAmplitude,
		TailDelay:     cfg.Player.TailDelay,
		TailSegments:  cfg.Player.TailSegments,
		MouthDuration: cfg.Player.MouthDuration,
	})

	s.log.Info("scene created",
		zap.Int("seaweed", len(s.seaweed)),
		zap.Int("fish", len(s.school.Fish)),
		zap.Int("tailSegments", s.player.TailSegments()))
	return s, nil
}

// Update advances the scene by dt seconds: clock, player animation, school,
// then player movement.
func (s *State) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.clock.Advance(dt)

	if s.player.Animate(dt) {
		s.log.Debug("mouth closed", zap.Float64("t", s.clock.Now()))
	}

	b := s.Bounds()
	if n := s.school.Update(dt, b); n > 0 {
		s.log.Debug("school bounced", zap.Int("walls", n), zap.Int("total", s.school.Bounces()))
	}
	s.player.Move(float32(dt), s.input, b)
}

// ToggleMouth handles a mouth key press.
func (s *State) ToggleMouth() {
	if s.player.ToggleMouth() {
		s.log.Debug("mouth opened", zap.Float64("t", s.clock.Now()))
	}
}

// SetInput replaces the key-state source.
func (s *State) SetInput(in control.Input) {
	if in == nil {
		in = control.None
	}
	s.input = in
}

// Bounds returns the tank for the current lens.
func (s *State) Bounds() tank.Bounds {
	return tank.New(s.tankCfg, s.lens)
}

// Now returns the scene time in seconds.
func (s *State) Now() float64 {
	return s.clock.Now()
}

// Player returns the user controlled fish.
func (s *State) Player() *player.Player {
	return s.player
}

// School returns the autonomous fish.
func (s *State) School() *school.School {
	return s.school
}

// Seaweed returns the seaweed chains.
func (s *State) Seaweed() []*seaweed.Chain {
	return s.seaweed
}
