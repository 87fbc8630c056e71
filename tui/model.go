package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/frobware/ghusers/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// skeletonRows is the number of placeholder rows shown while loading.
	skeletonRows = 8

	// repoBlockLines is the height of one repository entry in the overlay.
	repoBlockLines = 4
)

// Options configures a Model.
type Options struct {
	Gateway     Gateway
	Opener      Opener
	Clipboard   func(string) error
	DefaultSort view.SortCriterion
	Logger      *slog.Logger
}

// Model is the Bubble Tea model of the user browser. All state changes
// happen in Update; fetches run as commands and report back as
// messages.
type Model struct {
	ctx    context.Context
	ctrl   *view.Controller
	gw     Gateway
	opener Opener
	copyFn func(string) error
	logger *slog.Logger

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	search   textinput.Model
	viewport viewport.Model

	width, height int

	cursor     int
	listOffset int
	repoCursor int

	status string
}

// New returns a Model that has not yet requested any data.
func New(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	search := textinput.New()
	search.Placeholder = "Search by username or ID..."
	search.Prompt = "/ "
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle

	m := &Model{
		ctx:      ctx,
		ctrl:     view.NewController(opts.DefaultSort),
		gw:       opts.Gateway,
		opener:   opts.Opener,
		copyFn:   copyFn,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		search:   search,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Controller exposes the state controller, mainly for tests.
func (m *Model) Controller() *view.Controller {
	return m.ctrl
}

// Init starts the spinner and the one initial user fetch.
func (m *Model) Init() tea.Cmd {
	if err := m.ctrl.BeginLoad(); err != nil {
		m.logger.Debug("Initial load already requested")
		return m.spinner.Tick
	}
	m.logger.Info("Loading users")
	return tea.Batch(m.spinner.Tick, fetchUsersCmd(m.ctx, m.gw))
}

// Update applies msg to the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case usersLoadedMsg:
		m.ctrl.FinishLoad(msg.users, msg.err)
		if msg.err != nil {
			m.logger.Error("Failed to fetch users", "error", msg.err)
		} else {
			m.logger.Info("Users loaded", "count", len(msg.users))
		}
		m.clampCursor()
		return m, nil

	case reposLoadedMsg:
		if !m.ctrl.FinishSelect(msg.ticket, msg.repos, msg.err) {
			m.logger.Debug("Dropped stale repositories response", "login", msg.login, "ticket", msg.ticket)
			return m, nil
		}
		if msg.err != nil {
			m.logger.Error("Failed to fetch repositories", "login", msg.login, "error", msg.err)
			return m, nil
		}
		m.logger.Info("Repositories loaded", "login", msg.login, "count", len(msg.repos))
		m.repoCursor = 0
		m.refreshOverlay()
		m.viewport.SetYOffset(0)
		return m, nil

	case statusMsg:
		m.status = msg.text
		if msg.err != nil {
			m.logger.Warn(msg.text, "error", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	m.status = ""

	switch {
	case m.search.Focused():
		return m.handleSearchKey(msg)
	case m.ctrl.OverlayOpen():
		return m.handleOverlayKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.EndSearch) {
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.ctrl.Users().SearchTerm() {
		m.ctrl.SetSearchTerm(m.search.Value())
		m.cursor = 0
		m.listOffset = 0
	}
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampCursor()
	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.DismissNotice()
	}

	if m.ctrl.Phase() != view.PhaseReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
	case key.Matches(msg, m.keys.Select):
		return m, m.selectCurrent()
	case key.Matches(msg, m.keys.Open):
		if u, ok := m.ctrl.Users().At(m.cursor); ok {
			return m, openURLCmd(m.opener, u.HTMLURL)
		}
	case key.Matches(msg, m.keys.Copy):
		if u, ok := m.ctrl.Users().At(m.cursor); ok {
			return m, copyURLCmd(m.copyFn, u.HTMLURL)
		}
	}
	return m, nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	repos := m.ctrl.Repos()

	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.Close()
		m.repoCursor = 0
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeViewport()
		m.refreshOverlay()
	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.DismissNotice()
	case key.Matches(msg, m.keys.Sort):
		m.ctrl.SetSortCriterion(repos.Criterion().Next())
		m.repoCursor = 0
		m.refreshOverlay()
		m.viewport.SetYOffset(0)
	case key.Matches(msg, m.keys.Up):
		m.moveRepoCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRepoCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveRepoCursor(-max(1, m.viewport.Height/repoBlockLines))
	case key.Matches(msg, m.keys.PageDown):
		m.moveRepoCursor(max(1, m.viewport.Height/repoBlockLines))
	case key.Matches(msg, m.keys.Open):
		if r, ok := repos.At(m.repoCursor); ok {
			return m, openURLCmd(m.opener, r.HTMLURL)
		}
		if u, ok := m.ctrl.SelectedUser(); ok {
			return m, openURLCmd(m.opener, u.HTMLURL)
		}
	case key.Matches(msg, m.keys.Profile):
		if u, ok := m.ctrl.SelectedUser(); ok {
			return m, openURLCmd(m.opener, u.HTMLURL)
		}
	case key.Matches(msg, m.keys.Copy):
		if r, ok := repos.At(m.repoCursor); ok {
			return m, copyURLCmd(m.copyFn, r.HTMLURL)
		}
		if u, ok := m.ctrl.SelectedUser(); ok {
			return m, copyURLCmd(m.copyFn, u.HTMLURL)
		}
	}
	return m, nil
}

// selectCurrent requests the repositories of the highlighted user.
func (m *Model) selectCurrent() tea.Cmd {
	u, ok := m.ctrl.Users().At(m.cursor)
	if !ok {
		return nil
	}
	ticket, err := m.ctrl.Select(u)
	if err != nil {
		m.logger.Debug("Selection ignored", "login", u.Login, "error", err)
		return nil
	}
	m.logger.Info("Loading repositories", "login", u.Login, "ticket", ticket)
	return fetchReposCmd(m.ctx, m.gw, ticket, u.Login)
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.ctrl.Users().Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	height := m.listHeight()
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+height {
		m.listOffset = m.cursor - height + 1
	}
	if m.listOffset < 0 {
		m.listOffset = 0
	}
}

func (m *Model) moveRepoCursor(delta int) {
	n := m.ctrl.Repos().Len()
	if n == 0 {
		return
	}
	m.repoCursor = min(max(m.repoCursor+delta, 0), n-1)
	m.refreshOverlay()
	m.ensureRepoVisible()
}

func (m *Model) ensureRepoVisible() {
	top := m.overlayHeaderLines() + m.repoCursor*repoBlockLines
	bottom := top + repoBlockLines - 1
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.search.Width = max(10, min(width/2, 60))
	m.resizeViewport()
	m.clampCursor()
	if m.ctrl.OverlayOpen() {
		m.refreshOverlay()
	}
}

func (m *Model) resizeViewport() {
	frameW := overlayStyle.GetHorizontalFrameSize()
	frameH := overlayStyle.GetVerticalFrameSize()
	// Two lines below the overlay hold the notice and the help.
	m.viewport.Width = max(20, min(m.width-frameW-2, 100))
	m.viewport.Height = max(5, m.height-frameH-2-m.helpLines())
}

func (m *Model) helpLines() int {
	if m.help.ShowAll {
		return 4
	}
	return 1
}

// listHeight is the number of user rows that fit below the header,
// search box and status lines.
func (m *Model) listHeight() int {
	return max(1, m.height-7-m.helpLines())
}
