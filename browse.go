package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/cli/go-gh/pkg/browser"

	"github.com/frobware/ghusers/tui"
)

// browse runs the interactive user browser until the user quits.
func browse(ctx context.Context, config *Config, client GitHubClient, logger *slog.Logger) error {
	// The UI owns the terminal, so launcher output is discarded.
	b := browser.New(config.Browser, io.Discard, io.Discard)

	return tui.Run(ctx, tui.Options{
		Gateway:     client,
		Opener:      &b,
		DefaultSort: config.Sort,
		Logger:      logger,
	})
}
