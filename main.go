// Package main implements ghusers, a terminal browser for GitHub users
// and their public repositories.
//
// Features:
//   - Fetches the first page of users from the GitHub REST API
//   - Filters users by login (case-insensitive) or numeric id
//   - Shows a user's repositories sorted by name, stars or creation date
//   - Opens profiles and repositories in the web browser
//   - Prints the same views as tables, names or JSON for scripts
//
// No token is used; all requests are anonymous.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/frobware/ghusers/github"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ghusers: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Parse command-line arguments and the config file
	config, err := Parse(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(config, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientFactory := func() (GitHubClient, error) {
		return github.NewClient(github.WithLogger(logger))
	}

	if config.Command == CommandBrowse {
		client, err := clientFactory()
		if err != nil {
			return err
		}
		return browse(ctx, config, client, logger)
	}

	result, err := Run(ctx, config, clientFactory)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if err := FormatResult(OutputFromEnv(), result, config); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
