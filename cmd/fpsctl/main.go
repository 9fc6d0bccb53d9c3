package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fpsctl/internal/config"
	"fpsctl/internal/game"
	"fpsctl/internal/logger"
)

const defaultConfig = "configs/fpsctl.yaml"

func main() {
	configPath := flag.String("config", defaultConfig, "YAML config file")
	levelPath := flag.String("level", "assets/levels/demo.yaml", "YAML level file")
	logLevel := flag.String("log-level", "", "override logging.level (debug, info, warn, error)")
	flag.Parse()

	// Run from the executable's directory for deployed builds. Skip this for
	// "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	cfg, watched, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	logger.Init(cfg.Logging)

	if err := game.New(cfg, watched, *levelPath).Run(); err != nil {
		logger.L().Error("fpsctl failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig falls back to defaults when the default config file is absent.
// It returns the path to watch, empty when running on defaults.
func loadConfig(path string) (*config.Config, string, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, path, nil
	}
	if path == defaultConfig && errors.Is(err, os.ErrNotExist) {
		return config.Default(), "", nil
	}
	return nil, "", err
}
