package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/flashcards/config"
)

const (
	logFileName = "flashcards.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate above 10MB
)

// setupLogging returns a JSON logger writing to <dir>/flashcards.log when debug is on
// Output is discarded otherwise, the terminal is owned by the UI in both cases
// The returned file is nil when logging is disabled
func setupLogging(cfg config.LogConfig) (*slog.Logger, *os.File, error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(cfg.Dir, logFileName)
	if err := rotateLog(logPath); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	logger := slog.New(handler)

	// Package-level log and slog functions go to the same file
	slog.SetDefault(logger)
	log.SetOutput(f)

	return logger, f, nil
}

// rotateLog renames an oversized log to a timestamped name
func rotateLog(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s.%s%s", strings.TrimSuffix(logPath, ext), time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}

// parseLevel maps a validated level name, unknown names fall back to info
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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
