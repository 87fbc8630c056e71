package main

import (
	"context"

	"github.com/frobware/ghusers/github"
)

// GitHubClient defines the interface for GitHub API operations.
type GitHubClient interface {
	FetchUsers(ctx context.Context) ([]github.User, error)
	FetchUserRepos(ctx context.Context, login string) ([]github.Repository, error)
}
