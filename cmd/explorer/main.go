// Package main is the entry point for the SDL2 planet explorer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/config"
	"github.com/Faultbox/sphere-explorer/internal/explorer"
	"github.com/Faultbox/sphere-explorer/internal/logger"
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

	logger.Info("=== Sphere Explorer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	e, err := explorer.New(cfg)
	if err != nil {
		logger.Error("failed to create explorer", zap.Error(err))
		os.Exit(1)
	}
	defer e.Close()

	if err := e.Run(); err != nil {
		logger.Error("explorer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("explorer closed normally")
}
