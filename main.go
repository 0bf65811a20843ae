package main

import (
	"log/slog"
	"os"

	app "github.com/playgrid/tictactoe-backend/internal"
	"github.com/playgrid/tictactoe-backend/internal/config"
)

func main() {
	conf := config.MustLoad(configPath())
	logger := newLogger(conf.LogLevel)

	if err := app.RunApp(logger, conf); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

// configPath resolves the config file, defaulting to config.yml in the
// working directory.
func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	return "config.yml"
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
