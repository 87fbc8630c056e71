package view

import (
	"errors"
	"fmt"

	"github.com/frobware/ghusers/github"
)

// Phase is the state of the initial user load.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Display is what the user list area should show. An empty filtered
// view while ready is distinct from loading even though neither shows
// any users.
type Display int

const (
	DisplayLoading Display = iota
	DisplayError
	DisplayNoResults
	DisplayUsers
)

func (d Display) String() string {
	switch d {
	case DisplayLoading:
		return "loading"
	case DisplayError:
		return "error"
	case DisplayNoResults:
		return "no-results"
	case DisplayUsers:
		return "users"
	default:
		return fmt.Sprintf("Display(%d)", int(d))
	}
}

const (
	UsersErrorMessage = "Failed to fetch users. Please try again later."
	ReposErrorMessage = "Failed to fetch repositories. Please try again later."
)

var (
	ErrAlreadyLoaded = errors.New("users have already been requested")
	ErrNotReady      = errors.New("user list is not ready")
)

// Ticket identifies one repository request. Only the most recently
// issued ticket can update the overlay.
type Ticket uint64

type pendingSelection struct {
	ticket Ticket
	user   github.User
}

// Controller owns the user list, the repository view and the state
// that decides what is shown. It is not safe for concurrent use; fetch
// results are expected to be applied from a single goroutine.
type Controller struct {
	users *UserList
	repos *RepoSort

	defaultSort SortCriterion

	phase     Phase
	loadBegun bool
	err       error

	overlayOpen bool
	selected    *github.User

	lastTicket Ticket
	pending    *pendingSelection

	notice string
}

// NewController returns a controller in the loading phase with the
// overlay closed. defaultSort is the criterion each overlay opens with.
func NewController(defaultSort SortCriterion) *Controller {
	c := &Controller{
		users:       NewUserList(),
		repos:       NewRepoSort(),
		defaultSort: defaultSort,
		phase:       PhaseLoading,
	}
	c.repos.SetCriterion(defaultSort)
	return c
}

// Users exposes the user list view-model.
func (c *Controller) Users() *UserList {
	return c.users
}

// Repos exposes the repository view-model.
func (c *Controller) Repos() *RepoSort {
	return c.repos
}

// Phase returns the phase of the initial load.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Err returns the error that ended the initial load, if any.
func (c *Controller) Err() error {
	return c.err
}

// ErrorMessage returns the message shown in place of the user list.
func (c *Controller) ErrorMessage() string {
	if c.phase != PhaseError {
		return ""
	}
	return UsersErrorMessage
}

// BeginLoad marks the initial user fetch as started. Users are
// requested at most once per controller.
func (c *Controller) BeginLoad() error {
	if c.loadBegun {
		return ErrAlreadyLoaded
	}
	c.loadBegun = true
	return nil
}

// FinishLoad applies the result of the initial user fetch. A failure
// is terminal and leaves the list empty.
func (c *Controller) FinishLoad(users []github.User, err error) {
	if c.phase != PhaseLoading {
		return
	}

	if err != nil {
		c.err = err
		c.users.SetUsers(nil)
		c.phase = PhaseError
		return
	}

	c.users.SetUsers(users)
	c.phase = PhaseReady
}

// SetSearchTerm changes the term the user list is filtered by.
func (c *Controller) SetSearchTerm(term string) {
	c.users.SetSearchTerm(term)
}

// SetSortCriterion changes the order of the repository view.
func (c *Controller) SetSortCriterion(sc SortCriterion) {
	c.repos.SetCriterion(sc)
}

// Display derives what the user list area shows.
func (c *Controller) Display() Display {
	switch c.phase {
	case PhaseLoading:
		return DisplayLoading
	case PhaseError:
		return DisplayError
	}
	if c.users.Len() == 0 {
		return DisplayNoResults
	}
	return DisplayUsers
}

// Select starts a repository request for u and returns its ticket.
// Any earlier request still in flight becomes stale.
func (c *Controller) Select(u github.User) (Ticket, error) {
	if c.phase != PhaseReady {
		return 0, ErrNotReady
	}
	c.lastTicket++
	c.pending = &pendingSelection{ticket: c.lastTicket, user: u}
	return c.lastTicket, nil
}

// Pending returns the user whose repositories are being fetched.
func (c *Controller) Pending() (github.User, bool) {
	if c.pending == nil {
		return github.User{}, false
	}
	return c.pending.user, true
}

// FinishSelect applies the result of the request identified by t and
// reports whether it was applied. Results for superseded or cancelled
// requests are dropped. A failed request leaves the overlay and the
// user list as they were and records a notice.
func (c *Controller) FinishSelect(t Ticket, repos []github.Repository, err error) bool {
	if c.pending == nil || c.pending.ticket != t {
		return false
	}
	user := c.pending.user
	c.pending = nil

	if err != nil {
		c.notice = ReposErrorMessage
		return true
	}

	c.selected = &user
	c.repos.SetRepos(repos)
	c.overlayOpen = true
	c.notice = ""
	return true
}

// Close hides the overlay, forgets the selection and its repositories,
// and invalidates any request still in flight.
func (c *Controller) Close() {
	c.overlayOpen = false
	c.selected = nil
	c.pending = nil
	c.repos.Clear()
	c.repos.SetCriterion(c.defaultSort)
}

// OverlayOpen reports whether the repository overlay is shown.
func (c *Controller) OverlayOpen() bool {
	return c.overlayOpen
}

// SelectedUser returns the user whose repositories are shown.
func (c *Controller) SelectedUser() (github.User, bool) {
	if c.selected == nil {
		return github.User{}, false
	}
	return *c.selected, true
}

// Notice returns the message left by a failed repository request.
func (c *Controller) Notice() string {
	return c.notice
}

// DismissNotice clears the notice.
func (c *Controller) DismissNotice() {
	c.notice = ""
}
