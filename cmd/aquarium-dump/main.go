// Command aquarium-dump steps the aquarium without a window and prints the
// resulting state or the full draw list. It is handy for checking motion and
// bounds changes without a GPU.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/aquarium/internal/config"
	"github.com/Faultbox/aquarium/internal/engine/camera"
	"github.com/Faultbox/aquarium/internal/game/scene"
	"github.com/Faultbox/aquarium/internal/game/school"
	"github.com/Faultbox/aquarium/internal/logger"
)

var (
	flagFrames  = flag.Int("frames", 600, "Number of frames to simulate")
	flagFPS     = flag.Float64("fps", 60, "Simulated frame rate")
	flagKeys    = flag.String("keys", "", "Comma separated actions held for the whole run, e.g. forward,up")
	flagMouthAt = flag.String("mouth-at", "", "Comma separated frame numbers on which the mouth key is pressed")
	flagFormat  = flag.String("format", "summary", "Output format: summary or yaml")
	flagOut     = flag.String("out", "", "Write output to this file instead of stdout")
)

func main() {
	config.ParseFlags()

	if err := run(); err != nil {
		logger.Error("dump failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	script, err := parseScript(*flagFrames, *flagFPS, *flagKeys, *flagMouthAt)
	if err != nil {
		return err
	}

	cam := camera.New(cfg.Camera.Eye, cfg.Camera.Target, cfg.Camera.FovDegrees,
		cfg.Camera.Near, cfg.Camera.Far, cfg.Graphics.Width, cfg.Graphics.Height)
	rng, seed := school.NewRNG(cfg.School.Seed)
	st, err := scene.New(cfg, cam, script.keys, rng)
	if err != nil {
		return err
	}
	logger.Info("simulating", zap.Int("frames", script.frames), zap.Int64("seed", seed))

	script.run(st)

	var out io.Writer = os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch *flagFormat {
	case "summary":
		return writeSummary(out, st, seed)
	case "yaml":
		return writeYAML(out, st.Render())
	}
	return fmt.Errorf("unknown format %q", *flagFormat)
}
