package config

import (
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
)

// NewLogger builds the process logger: coloured console output while
// developing, JSON lines in production.
func NewLogger(cfg *Config) *slog.Logger {
	level := parseLevel(cfg.Server.LogLevel)

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	// DefaultOptions is a shared pointer; work on a copy.
	opts := *slogcolor.DefaultOptions
	opts.Level = level
	opts.MsgColor = color.New(color.FgMagenta)
	opts.SrcFileMode = slogcolor.Nop
	return slog.New(slogcolor.NewHandler(os.Stderr, &opts))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
