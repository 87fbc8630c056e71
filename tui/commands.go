package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/frobware/ghusers/github"
	"github.com/frobware/ghusers/view"
)

// Gateway is the data source the browser reads from.
type Gateway interface {
	FetchUsers(ctx context.Context) ([]github.User, error)
	FetchUserRepos(ctx context.Context, login string) ([]github.Repository, error)
}

// Opener opens a URL outside the terminal.
type Opener interface {
	Browse(url string) error
}

// fetchUsersCmd returns a tea.Cmd that performs the initial user fetch.
func fetchUsersCmd(ctx context.Context, gw Gateway) tea.Cmd {
	return func() tea.Msg {
		users, err := gw.FetchUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

// fetchReposCmd returns a tea.Cmd that fetches the repositories of
// login on behalf of the request identified by ticket.
func fetchReposCmd(ctx context.Context, gw Gateway, ticket view.Ticket, login string) tea.Cmd {
	return func() tea.Msg {
		repos, err := gw.FetchUserRepos(ctx, login)
		return reposLoadedMsg{ticket: ticket, login: login, repos: repos, err: err}
	}
}

func openURLCmd(opener Opener, url string) tea.Cmd {
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		if opener == nil {
			return statusMsg{text: "No browser configured"}
		}
		if err := opener.Browse(url); err != nil {
			return statusMsg{text: fmt.Sprintf("Failed to open %s", url), err: err}
		}
		return statusMsg{text: "Opened " + url}
	}
}

func copyURLCmd(copyFn func(string) error, url string) tea.Cmd {
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		if copyFn == nil {
			return statusMsg{text: "Clipboard unavailable"}
		}
		if err := copyFn(url); err != nil {
			return statusMsg{text: "Failed to copy URL", err: err}
		}
		return statusMsg{text: "Copied " + url}
	}
}
