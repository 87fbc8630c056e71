package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/frobware/ghusers/view"
)

// ErrInteractive is returned by Run for the browse command, which is
// served by the terminal UI rather than the Run pipeline.
var ErrInteractive = errors.New("browse is interactive")

// Run executes the non-interactive commands and returns structured
// data for FormatResult.
func Run(ctx context.Context, config *Config, clientFactory func() (GitHubClient, error)) (Result, error) {
	if config.Command == CommandBrowse {
		return nil, ErrInteractive
	}

	client, err := clientFactory()
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	switch config.Command {
	case CommandUsers:
		return runUsers(ctx, config, client)
	case CommandRepos:
		return runRepos(ctx, config, client)
	default:
		return nil, fmt.Errorf("unknown command %q", config.Command)
	}
}

func runUsers(ctx context.Context, config *Config, client GitHubClient) (Result, error) {
	users, err := client.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	list := view.NewUserList()
	list.SetUsers(users)
	list.SetSearchTerm(config.Search)

	return UserResult{
		Users:  list.Filtered(),
		Total:  len(users),
		Search: config.Search,
	}, nil
}

func runRepos(ctx context.Context, config *Config, client GitHubClient) (Result, error) {
	repos, err := client.FetchUserRepos(ctx, config.Login)
	if err != nil {
		return nil, err
	}

	rs := view.NewRepoSort()
	rs.SetCriterion(config.Sort)
	rs.SetRepos(repos)

	return RepoResult{
		Login: config.Login,
		Sort:  rs.Criterion(),
		Repos: rs.Sorted(),
	}, nil
}
