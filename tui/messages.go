package tui

import (
	"github.com/frobware/ghusers/github"
	"github.com/frobware/ghusers/view"
)

// usersLoadedMsg carries the result of the initial user fetch.
type usersLoadedMsg struct {
	users []github.User
	err   error
}

// reposLoadedMsg carries the result of one repository fetch. The
// ticket decides whether it is still wanted.
type reposLoadedMsg struct {
	ticket view.Ticket
	login  string
	repos  []github.Repository
	err    error
}

// statusMsg is a transient line shown under the list.
type statusMsg struct {
	text string
	err  error
}
