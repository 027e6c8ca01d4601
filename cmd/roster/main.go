package main

import (
	"context"
	"fmt"
	"os"

	"github.com/riskibarqy/roster-manager/internal/app"
	"github.com/riskibarqy/roster-manager/internal/config"
	"github.com/riskibarqy/roster-manager/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	session, closeSession, err := app.NewSession(cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Error("build session", "error", err)
		return 1
	}
	defer func() {
		if err := closeSession(); err != nil {
			logger.Warn("close roster backend", "error", err)
		}
	}()

	if err := session.Run(context.Background()); err != nil {
		logger.Error("roster session failed", "error", err, "backend", cfg.Backend)
		fmt.Fprintf(os.Stderr, "roster session failed: %v\n", err)
		return 1
	}

	return 0
}
