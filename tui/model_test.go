package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/ghusers/github"
	"github.com/frobware/ghusers/view"
)

type fakeGateway struct {
	mu       sync.Mutex
	users    []github.User
	usersErr error
	repos    map[string][]github.Repository
	reposErr map[string]error
	calls    []string
}

func (f *fakeGateway) FetchUsers(ctx context.Context) ([]github.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "users")
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeGateway) FetchUserRepos(ctx context.Context, login string) ([]github.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "repos:"+login)
	if err := f.reposErr[login]; err != nil {
		return nil, err
	}
	return f.repos[login], nil
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Browse(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

var (
	ann = github.User{ID: 1, Login: "Ann", HTMLURL: "https://github.com/Ann"}
	bob = github.User{ID: 2, Login: "bob", HTMLURL: "https://github.com/bob"}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func newLoadedModel(t *testing.T, gw *fakeGateway) *Model {
	t.Helper()
	m := New(context.Background(), Options{Gateway: gw, Clipboard: func(string) error { return nil }})
	require.NotNil(t, m.Init())
	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	send(t, m, fetchUsersCmd(context.Background(), gw)())
	return m
}

func TestModel_Loading(t *testing.T) {
	m := New(context.Background(), Options{Gateway: &fakeGateway{}})
	m.Init()

	assert.Equal(t, view.DisplayLoading, m.Controller().Display())
	assert.Contains(t, m.View(), "Loading users...")
	assert.Contains(t, m.View(), "GitHub Users")
}

func TestModel_InitFetchesOnce(t *testing.T) {
	gw := &fakeGateway{users: []github.User{ann}}
	m := New(context.Background(), Options{Gateway: gw})

	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)
	for _, cmd := range batch {
		cmd()
	}

	// A second Init only restarts the spinner.
	_, isTick := m.Init()().(spinner.TickMsg)
	assert.True(t, isTick)
	assert.Equal(t, []string{"users"}, gw.calls)
}

func TestModel_UsersFailure(t *testing.T) {
	gw := &fakeGateway{usersErr: errors.New("503")}
	m := newLoadedModel(t, gw)

	assert.Equal(t, view.PhaseError, m.Controller().Phase())
	out := m.View()
	assert.Contains(t, out, "Failed to fetch users. Please try again later.")
	assert.NotContains(t, out, "id no:")

	// Selecting is impossible once the load failed.
	assert.Nil(t, send(t, m, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, m.Controller().OverlayOpen())
}

func TestModel_ListAndSearch(t *testing.T) {
	gw := &fakeGateway{users: []github.User{ann, bob}}
	m := newLoadedModel(t, gw)

	out := m.View()
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "id no: 2")

	send(t, m, keyRunes("/"))
	require.True(t, m.search.Focused())
	send(t, m, keyRunes("b"))
	send(t, m, keyRunes("o"))

	assert.Equal(t, "bo", m.Controller().Users().SearchTerm())
	assert.Equal(t, []github.User{bob}, m.Controller().Users().Filtered())

	send(t, m, keyRunes("z"))
	assert.Equal(t, view.DisplayNoResults, m.Controller().Display())
	assert.Contains(t, m.View(), "No users found.")

	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.search.Focused())
	assert.Equal(t, "boz", m.Controller().Users().SearchTerm(), "leaving search keeps the term")
}

func TestModel_SelectOpensOverlay(t *testing.T) {
	gw := &fakeGateway{
		users: []github.User{ann, bob},
		repos: map[string][]github.Repository{
			"bob": {
				{ID: 1, Name: "zeta", StargazersCount: 1, HTMLURL: "https://github.com/bob/zeta"},
				{ID: 2, Name: "Alpha", StargazersCount: 9, HTMLURL: "https://github.com/bob/Alpha"},
			},
		},
	}
	m := newLoadedModel(t, gw)

	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	pending, ok := m.Controller().Pending()
	require.True(t, ok)
	assert.Equal(t, bob, pending)
	assert.Contains(t, m.View(), "Loading repositories for bob")

	send(t, m, cmd())
	require.True(t, m.Controller().OverlayOpen())

	out := m.View()
	assert.Contains(t, out, "Repositories:")
	assert.Contains(t, out, "Sort by: Name")
	assert.Contains(t, out, "Profile URL")
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "zeta"))

	send(t, m, keyRunes("s"))
	assert.Equal(t, view.SortByStars, m.Controller().Repos().Criterion())
	assert.Contains(t, m.View(), "Sort by: Stars")

	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Controller().OverlayOpen())
	assert.Equal(t, view.SortByName, m.Controller().Repos().Criterion())
	assert.Contains(t, m.View(), "Ann")
}

func TestModel_EmptyRepos(t *testing.T) {
	gw := &fakeGateway{users: []github.User{ann}, repos: map[string][]github.Repository{}}
	m := newLoadedModel(t, gw)

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	send(t, m, cmd())

	require.True(t, m.Controller().OverlayOpen())
	assert.Contains(t, m.View(), "No repositories found.")
}

func TestModel_RepoFailureKeepsList(t *testing.T) {
	gw := &fakeGateway{
		users:    []github.User{ann, bob},
		reposErr: map[string]error{"Ann": errors.New("404")},
	}
	m := newLoadedModel(t, gw)

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	send(t, m, cmd())

	assert.False(t, m.Controller().OverlayOpen())
	assert.Equal(t, view.PhaseReady, m.Controller().Phase())
	out := m.View()
	assert.Contains(t, out, "Failed to fetch repositories. Please try again later.")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "bob")

	send(t, m, keyRunes("x"))
	assert.Empty(t, m.Controller().Notice())
}

func TestModel_StaleRepoResponse(t *testing.T) {
	gw := &fakeGateway{
		users: []github.User{ann, bob},
		repos: map[string][]github.Repository{
			"Ann": {{ID: 1, Name: "anns"}},
			"bob": {{ID: 2, Name: "bobs"}},
		},
	}
	m := newLoadedModel(t, gw)

	annCmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	bobCmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	send(t, m, bobCmd())
	send(t, m, annCmd())

	selected, ok := m.Controller().SelectedUser()
	require.True(t, ok)
	assert.Equal(t, bob, selected)
	assert.Contains(t, m.View(), "bobs")
	assert.NotContains(t, m.View(), "anns")
}

func TestModel_ResponseAfterCloseIgnored(t *testing.T) {
	gw := &fakeGateway{
		users: []github.User{ann},
		repos: map[string][]github.Repository{"Ann": {{ID: 1, Name: "anns"}}},
	}
	m := newLoadedModel(t, gw)

	first := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	send(t, m, first())
	require.True(t, m.Controller().OverlayOpen())

	// Ask again from the overlay's user, then close before it lands.
	send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	late := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, late)
	m.Controller().Close()

	send(t, m, late())
	assert.False(t, m.Controller().OverlayOpen())
	assert.Zero(t, m.Controller().Repos().Len())
}

func TestModel_OpenAndCopy(t *testing.T) {
	gw := &fakeGateway{
		users: []github.User{ann},
		repos: map[string][]github.Repository{"Ann": {{ID: 1, Name: "anns", HTMLURL: "https://github.com/Ann/anns"}}},
	}
	opener := &fakeOpener{}
	var copied []string

	m := New(context.Background(), Options{
		Gateway:   gw,
		Opener:    opener,
		Clipboard: func(s string) error { copied = append(copied, s); return nil },
	})
	m.Init()
	send(t, m, fetchUsersCmd(context.Background(), gw)())

	cmd := send(t, m, keyRunes("o"))
	require.NotNil(t, cmd)
	send(t, m, cmd())
	assert.Equal(t, []string{"https://github.com/Ann"}, opener.opened)
	assert.Contains(t, m.View(), "Opened https://github.com/Ann")

	cmd = send(t, m, keyRunes("y"))
	send(t, m, cmd())
	assert.Equal(t, []string{"https://github.com/Ann"}, copied)

	cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	send(t, m, cmd())
	require.True(t, m.Controller().OverlayOpen())

	cmd = send(t, m, keyRunes("o"))
	send(t, m, cmd())
	assert.Equal(t, "https://github.com/Ann/anns", opener.opened[len(opener.opened)-1])

	cmd = send(t, m, keyRunes("p"))
	send(t, m, cmd())
	assert.Equal(t, "https://github.com/Ann", opener.opened[len(opener.opened)-1])
}

func TestModel_OpenFailureShowsStatus(t *testing.T) {
	gw := &fakeGateway{users: []github.User{ann}}
	opener := &fakeOpener{err: errors.New("no browser")}
	m := New(context.Background(), Options{Gateway: gw, Opener: opener})
	m.Init()
	send(t, m, fetchUsersCmd(context.Background(), gw)())

	cmd := send(t, m, keyRunes("o"))
	send(t, m, cmd())
	assert.Contains(t, m.View(), "Failed to open https://github.com/Ann")
}

func TestModel_CursorBounds(t *testing.T) {
	gw := &fakeGateway{users: []github.User{ann, bob}}
	m := newLoadedModel(t, gw)

	send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
}

func TestModel_Quit(t *testing.T) {
	m := newLoadedModel(t, &fakeGateway{users: []github.User{ann}})

	cmd := send(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
