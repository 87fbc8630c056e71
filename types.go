package main

import (
	"github.com/frobware/ghusers/github"
	"github.com/frobware/ghusers/view"
)

// Result represents the output of running the application.
type Result interface{}

// UserResult is the filtered user list printed by the users command.
type UserResult struct {
	Users  []github.User `json:"users"`
	Total  int           `json:"total"`
	Search string        `json:"search,omitempty"`
}

// RepoResult holds one user's repositories in display order.
type RepoResult struct {
	Login string              `json:"login"`
	Sort  view.SortCriterion  `json:"sort"`
	Repos []github.Repository `json:"repositories"`
}
