// Package config handles aquarium configuration loading and management.
package config

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Config holds all settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Light      LightConfig      `yaml:"light"`
	Tank       TankConfig       `yaml:"tank"`
	Seaweed    SeaweedConfig    `yaml:"seaweed"`
	School     SchoolConfig     `yaml:"school"`
	Player     PlayerConfig     `yaml:"player"`
	Controls   ControlsConfig   `yaml:"controls"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Background mgl32.Vec3 `yaml:"background"`
}

// CameraConfig holds the fixed viewpoint. The tank walls follow this lens.
type CameraConfig struct {
	Eye        mgl32.Vec3 `yaml:"eye"`
	Target     mgl32.Vec3 `yaml:"target"`
	FovDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

// LightConfig places the directional light.
type LightConfig struct {
	Longitude float32    `yaml:"longitude"` // degrees around +Y
	Latitude  float32    `yaml:"latitude"`  // degrees above the horizon
	Color     mgl32.Vec3 `yaml:"color"`
	Ambient   float32    `yaml:"ambient"`
}

// TankConfig holds the fixed tank geometry and the floor.
type TankConfig struct {
	Margin    float32    `yaml:"margin"`
	MinZ      float32    `yaml:"min_z"`
	MaxZ      float32    `yaml:"max_z"`
	Epsilon   float32    `yaml:"epsilon"`
	Floor     float32    `yaml:"floor"` // lowest Y a fish may swim at; the base top is y=0
	BaseScale mgl32.Vec3 `yaml:"base_scale"`
	BaseColor mgl32.Vec3 `yaml:"base_color"`
}

// SeaweedConfig describes every seaweed chain. All chains share the shape
// and differ by base position.
type SeaweedConfig struct {
	Positions       []mgl32.Vec3 `yaml:"positions"`
	Segments        int          `yaml:"segments"`
	SegmentHeight   float32      `yaml:"segment_height"`
	DelayPerSegment float32      `yaml:"delay_per_segment"`
	MaxSwing        float32      `yaml:"max_swing"`
	Omega           float32      `yaml:"omega"`
	Color           mgl32.Vec3   `yaml:"color"`
	Scale           mgl32.Vec3   `yaml:"scale"`
}

// SchoolConfig describes the autonomous fish.
type SchoolConfig struct {
	Seed          int64       `yaml:"seed"` // 0 picks a time based seed
	Speed         float32     `yaml:"speed"`
	VerticalDrift float32     `yaml:"vertical_drift"` // max |y| of a new heading before normalization
	Fish          []FishEntry `yaml:"fish"`
}

// FishEntry is one school fish. A zero color is randomized.
type FishEntry struct {
	Kind     string     `yaml:"kind"`
	Position mgl32.Vec3 `yaml:"position"`
	Scale    mgl32.Vec3 `yaml:"scale"`
	Color    mgl32.Vec3 `yaml:"color"`
}

// PlayerConfig holds the user controlled fish settings.
type PlayerConfig struct {
	Position      mgl32.Vec3 `yaml:"position"`
	Speed         float32    `yaml:"speed"`
	RotationSpeed float32    `yaml:"rotation_speed"`
	TailSpeed     float32    `yaml:"tail_speed"`
	TailAmplitude float32    `yaml:"tail_amplitude"`
	TailDelay     float32    `yaml:"tail_delay"` // phase lag between tail segments
	TailSegments  int        `yaml:"tail_segments"`
	MouthDuration float64    `yaml:"mouth_duration"`
}

// ControlsConfig maps actions to SDL key names.
type ControlsConfig struct {
	Forward    string `yaml:"forward"`
	Back       string `yaml:"back"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Up         string `yaml:"up"`
	Down       string `yaml:"down"`
	TurnLeft   string `yaml:"turn_left"`
	TurnRight  string `yaml:"turn_right"`
	Mouth      string `yaml:"mouth"`
	Screenshot string `yaml:"screenshot"`
	Quit       string `yaml:"quit"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
	Scale  int    `yaml:"scale"`  // supersampling factor, 1 captures the window as shown
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock aquarium.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Background: mgl32.Vec3{0.2, 0.5, 0.8},
		},
		Camera: CameraConfig{
			Eye:        mgl32.Vec3{0, 10, 25},
			Target:     mgl32.Vec3{0, 8, 0},
			FovDegrees: 45,
			Near:       0.1,
			Far:        1000,
		},
		Light: LightConfig{
			Longitude: 30,
			Latitude:  60,
			Color:     mgl32.Vec3{1, 1, 1},
			Ambient:   0.3,
		},
		Tank: TankConfig{
			Margin:    2,
			MinZ:      -15,
			MaxZ:      10,
			Epsilon:   0.01,
			Floor:     1,
			BaseScale: mgl32.Vec3{70, 1, 40},
			BaseColor: mgl32.Vec3{0.9, 0.8, 0.6},
		},
		Seaweed: SeaweedConfig{
			Positions: []mgl32.Vec3{
				{7, 0, 0},
				{-7, 0, -10},
				{-7, 0, 5},
			},
			Segments:        7,
			SegmentHeight:   2,
			DelayPerSegment: 0.3,
			MaxSwing:        0.25,
			Omega:           1.8,
			Color:           mgl32.Vec3{0, 0.5, 0},
			Scale:           mgl32.Vec3{1, 2, 1},
		},
		School: SchoolConfig{
			Seed:          0,
			Speed:         3,
			VerticalDrift: 0.25,
			Fish: []FishEntry{
				{Kind: "fish1", Position: mgl32.Vec3{0, 15, 0}, Scale: mgl32.Vec3{2, 2, 2}},
				{Kind: "fish2", Position: mgl32.Vec3{-5, 9, -6}, Scale: mgl32.Vec3{2, 2, 2}},
				{Kind: "fish3", Position: mgl32.Vec3{6, 6, 2}, Scale: mgl32.Vec3{2, 2, 2}},
				{Kind: "fish1", Position: mgl32.Vec3{-8, 12, 4}, Scale: mgl32.Vec3{1.5, 1.5, 1.5}},
				{Kind: "fish2", Position: mgl32.Vec3{4, 13, -10}, Scale: mgl32.Vec3{2.5, 2.5, 2.5}},
			},
		},
		Player: PlayerConfig{
			Position:      mgl32.Vec3{0, 5, 0},
			Speed:         5,
			RotationSpeed: 2,
			TailSpeed:     5,
			TailAmplitude: 0.35,
			TailDelay:     0.6,
			TailSegments:  3,
			MouthDuration: 1,
		},
		Controls: ControlsConfig{
			Forward:    "W",
			Back:       "S",
			Left:       "A",
			Right:      "D",
			Up:         "Space",
			Down:       "Left Shift",
			TurnLeft:   "Q",
			TurnRight:  "E",
			Mouth:      "Return",
			Screenshot: "F12",
			Quit:       "Escape",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
