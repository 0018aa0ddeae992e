// Package logging builds the structured slog loggers used by the gridkit
// driver and renders grids and search progress as log records.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/gridkit/grid"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat is returned by New for a handler format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config holds logger configuration
type Config struct {
	Level     string // debug, info, warn or error
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "text",
		Output: os.Stderr,
	}
}

// ParseLevel maps a case-insensitive level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// New creates a structured logger writing to cfg.Output (stderr when nil).
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text", "":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	return logger, nil
}

// LogGrid writes g as one debug record per row, so a map shows up line by
// line in text logs and as separate entries in JSON logs.
func LogGrid(ctx context.Context, logger *slog.Logger, msg string, g *grid.Grid) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for y, line := range g.Lines() {
		logger.DebugContext(ctx, msg, "row", y, "cells", line)
	}
}

// RoundLogger returns a round callback that reports search progress at debug
// level, suitable for pathfind.WithOnRound.
func RoundLogger(ctx context.Context, logger *slog.Logger) func(round, live int) {
	return func(round, live int) {
		logger.DebugContext(ctx, "search round", "round", round, "live", live)
	}
}
