package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/aquarium/internal/engine/mesh"
)

// Validate reports every setting the aquarium cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov_degrees must be in (0, 180), got %v", c.Camera.FovDegrees))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.Eye == c.Camera.Target {
		errs = append(errs, errors.New("camera: eye and target coincide"))
	}
	if c.Light.Ambient < 0 || c.Light.Ambient > 1 {
		errs = append(errs, fmt.Errorf("light: ambient must be in [0, 1], got %v", c.Light.Ambient))
	}
	if c.Tank.MinZ >= c.Tank.MaxZ {
		errs = append(errs, fmt.Errorf("tank: min_z (%v) must be below max_z (%v)", c.Tank.MinZ, c.Tank.MaxZ))
	}
	if c.Tank.MaxZ >= c.Camera.Eye.Z() {
		errs = append(errs, fmt.Errorf("tank: max_z (%v) must be in front of the camera (z=%v)", c.Tank.MaxZ, c.Camera.Eye.Z()))
	}
	if c.Tank.Floor >= c.Camera.Eye.Y() {
		errs = append(errs, fmt.Errorf("tank: floor (%v) must be below the camera (y=%v)", c.Tank.Floor, c.Camera.Eye.Y()))
	}
	if c.Tank.Epsilon < 0 || c.Tank.Margin < 0 {
		errs = append(errs, errors.New("tank: margin and epsilon must not be negative"))
	}
	if c.Seaweed.Segments < 1 && len(c.Seaweed.Positions) > 0 {
		errs = append(errs, fmt.Errorf("seaweed: segments must be at least 1, got %d", c.Seaweed.Segments))
	}
	if c.Seaweed.DelayPerSegment <= 0 && c.Seaweed.Segments > 1 {
		errs = append(errs, errors.New("seaweed: delay_per_segment must be positive so the wave travels"))
	}
	for i, f := range c.School.Fish {
		if id, err := mesh.ParseID(f.Kind); err != nil || !id.IsFish() {
			errs = append(errs, fmt.Errorf("school: fish %d has unknown kind %q", i, f.Kind))
		}
	}
	if c.School.Speed < 0 || c.Player.Speed < 0 {
		errs = append(errs, errors.New("speeds must not be negative"))
	}
	if c.Player.TailSegments < 0 {
		errs = append(errs, fmt.Errorf("player: tail_segments must not be negative, got %d", c.Player.TailSegments))
	}
	switch c.Screenshot.Format {
	case "", "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("screenshot: unknown format %q", c.Screenshot.Format))
	}

	if c.Screenshot.Scale < 0 {
		errs = append(errs, fmt.Errorf("screenshot: scale must not be negative, got %d", c.Screenshot.Scale))
	}

	return errors.Join(errs...)
}
