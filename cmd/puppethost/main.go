// Package main is the entry point for the marionette puppet host.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/marionette/internal/config"
	"github.com/Faultbox/marionette/internal/host"
	"github.com/Faultbox/marionette/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Marionette Puppet Host ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	h, err := host.New(cfg)
	if err != nil {
		logger.Error("failed to create host", zap.Error(err))
		os.Exit(1)
	}
	defer h.Close()

	if err := h.Run(); err != nil {
		logger.Error("host error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("host closed normally")
}
