// Package game runs the interactive aquarium: window, input, scene update
// and rendering in one frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/aquarium/internal/config"
	"github.com/Faultbox/aquarium/internal/engine/camera"
	"github.com/Faultbox/aquarium/internal/engine/debug"
	"github.com/Faultbox/aquarium/internal/engine/input"
	"github.com/Faultbox/aquarium/internal/engine/lighting"
	"github.com/Faultbox/aquarium/internal/engine/renderer"
	"github.com/Faultbox/aquarium/internal/engine/window"
	"github.com/Faultbox/aquarium/internal/game/control"
	"github.com/Faultbox/aquarium/internal/game/scene"
	"github.com/Faultbox/aquarium/internal/game/school"
	"github.com/Faultbox/aquarium/internal/logger"
)

// maxFrameDelta caps dt so a stalled frame (window drag, breakpoint) does
// not teleport the fish through the walls.
const maxFrameDelta = 0.1

// Game is the interactive aquarium session.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.Camera
	state    *scene.State
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	draws []scene.DrawCommand
}

// New opens the window and builds the scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing aquarium",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	bindings, err := input.FromConfig(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("invalid controls: %w", err)
	}

	g.window, err = window.New(window.Config{
		Title:      "Aquarium",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	fbw, fbh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      fbw,
		Height:     fbh,
		Background: cfg.Graphics.Background,
		Light: lighting.Sun{
			Longitude: cfg.Light.Longitude,
			Latitude:  cfg.Light.Latitude,
			Color:     cfg.Light.Color,
			Ambient:   cfg.Light.Ambient,
		},
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New(bindings)
	g.camera = camera.New(cfg.Camera.Eye, cfg.Camera.Target, cfg.Camera.FovDegrees,
		cfg.Camera.Near, cfg.Camera.Far, fbw, fbh)

	rng, seed := school.NewRNG(cfg.School.Seed)
	g.log.Info("school seed", zap.Int64("seed", seed))
	g.state, err = scene.New(cfg, g.camera, g.input, rng)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	g.shots = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "aquarium", cfg.Screenshot.Format)

	g.log.Info("aquarium initialized")
	return g, nil
}

// FrameDelta returns the seconds between two frames, capped at
// maxFrameDelta and never negative.
func FrameDelta(prev, now time.Time) float64 {
	dt := now.Sub(prev).Seconds()
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}

// Run drives the frame loop until the window closes or quit is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	g.log.Info("starting frame loop")

	for g.running {
		now := time.Now()
		dt := FrameDelta(lastTime, now)
		lastTime = now

		if g.input.Update() {
			break
		}
		screenshot := g.handleEvents()
		if !g.running {
			break
		}

		g.state.Update(dt)
		g.draws = g.state.RenderInto(g.draws)
		g.renderer.Draw(g.draws, g.camera.View(), g.camera.Projection())

		if screenshot {
			g.takeScreenshot()
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("draws", len(g.draws)),
				zap.Int("bounces", g.state.School().Bounces()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	g.log.Info("frame loop stopped", zap.Float64("sceneTime", g.state.Now()))
	return nil
}

// handleEvents applies this frame's discrete events. It reports whether a
// screenshot was requested.
func (g *Game) handleEvents() bool {
	for _, e := range g.input.Events() {
		if e.Type == input.EventWindowResize {
			w, h := g.window.DrawableSize()
			g.camera.Resize(w, h)
			g.renderer.Resize(w, h)
			g.log.Info("resized", zap.Int("width", w), zap.Int("height", h))
		}
	}
	if g.input.Pressed(control.Quit) {
		g.running = false
	}
	if g.input.Pressed(control.Mouth) {
		g.state.ToggleMouth()
	}
	return g.input.Pressed(control.Screenshot)
}

func (g *Game) takeScreenshot() {
	pixels, w, h, err := g.renderer.Capture(g.draws, g.camera.View(), g.camera.Projection(), g.config.Screenshot.Scale)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	name, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases the renderer and the window.
func (g *Game) Close() {
	g.log.Info("closing aquarium")

	if g.renderer != nil {
		g.renderer.Close()
		g.renderer = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
