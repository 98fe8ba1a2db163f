// Package main is the entry point for the interactive aquarium.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/aquarium/internal/config"
	"github.com/Faultbox/aquarium/internal/game"
	"github.com/Faultbox/aquarium/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Aquarium ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start aquarium", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := g.Run(); err != nil {
		logger.Error("aquarium error", zap.Error(err))
		g.Close()
		logger.Sync()
		os.Exit(1)
	}
	g.Close()

	logger.Info("aquarium closed normally")
}
