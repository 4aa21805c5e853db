package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"shelfmate/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	// .env is optional; it can point SHELFMATE_CONFIG at a config file.
	_ = godotenv.Load()

	config := shared.DefaultConfig()
	path := os.Getenv("SHELFMATE_CONFIG")
	if path == "" {
		path = "config.toml"
	}
	if _, err := os.Stat(path); err == nil {
		if loadedConfig, err := shared.LoadConfig(path); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:           "shelfmate",
		Usage:          "Track your reading from the terminal",
		Version:        "0.1.0",
		Commands:       runner.register(),
		DefaultCommand: "tui",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
