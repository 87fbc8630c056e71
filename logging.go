package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger builds the process logger. The interactive browser owns
// the terminal, so it only logs when --log-file is given; the other
// commands log warnings (or everything with --debug) to stderr.
func newLogger(config *Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	level := slog.LevelWarn
	if config.Debug {
		level = slog.LevelDebug
	}

	var w io.Writer
	closer := func() error { return nil }

	switch {
	case config.LogFile != "":
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
		if !config.Debug {
			level = slog.LevelInfo
		}
	case config.Command == CommandBrowse:
		w = io.Discard
	default:
		w = stderr
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("command", string(config.Command))
	return logger, closer, nil
}
