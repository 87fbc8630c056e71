package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/frobware/ghusers/github"
	"github.com/frobware/ghusers/view"
)

const title = "GitHub Users"

// View renders the current state.
func (m *Model) View() string {
	if m.ctrl.OverlayOpen() {
		return m.renderOverlay()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Width(m.width).Render(title))
	b.WriteString("\n\n")

	switch m.ctrl.Display() {
	case view.DisplayLoading:
		b.WriteString(m.renderLoading())
	case view.DisplayError:
		b.WriteString(errorStyle.Render(m.ctrl.ErrorMessage()))
		b.WriteString("\n")
	case view.DisplayNoResults:
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("No users found."))
		b.WriteString("\n")
	case view.DisplayUsers:
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
		b.WriteString(m.renderUsers())
	}

	b.WriteString(m.renderStatusLines())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.currentHelp()))
	return b.String()
}

func (m *Model) currentHelp() helpKeys {
	switch {
	case m.search.Focused():
		return m.keys.searchHelp()
	case m.ctrl.OverlayOpen():
		return m.keys.overlayHelp()
	default:
		return m.keys.listHelp()
	}
}

func (m *Model) renderLoading() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" Loading users...\n\n")
	for i := 0; i < min(skeletonRows, m.listHeight()); i++ {
		b.WriteString(skeletonStyle.Render("  ████████████   ░░░░░░░░"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderUsers() string {
	users := m.ctrl.Users()
	height := m.listHeight()
	loginWidth := max(10, min(m.width/2, 40))

	var b strings.Builder
	end := min(m.listOffset+height, users.Len())
	for i := m.listOffset; i < end; i++ {
		u, _ := users.At(i)
		b.WriteString(m.renderUserRow(u, i == m.cursor, loginWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderUserRow(u github.User, selected bool, loginWidth int) string {
	login := runewidth.FillRight(runewidth.Truncate(u.Login, loginWidth, "…"), loginWidth)
	id := mutedStyle.Render("id no: " + u.IDString())
	if selected {
		return cursorStyle.Render("▸ ") + selectedLoginStyle.Render(login) + " " + id
	}
	return "  " + loginStyle.Render(login) + " " + id
}

func (m *Model) renderStatusLines() string {
	var lines []string
	if pending, ok := m.ctrl.Pending(); ok {
		lines = append(lines, m.spinner.View()+" Loading repositories for "+pending.Login+"...")
	}
	if notice := m.ctrl.Notice(); notice != "" {
		lines = append(lines, noticeStyle.Render(notice+" (x to dismiss)"))
	}
	if m.status != "" {
		lines = append(lines, mutedStyle.Render(m.status))
	}
	if len(lines) == 0 {
		return ""
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderOverlay() string {
	box := overlayStyle.Render(m.viewport.View())

	var footer []string
	if notice := m.ctrl.Notice(); notice != "" {
		footer = append(footer, noticeStyle.Render(notice))
	}
	if m.status != "" {
		footer = append(footer, mutedStyle.Render(m.status))
	}
	footer = append(footer, m.help.View(m.currentHelp()))

	content := lipgloss.JoinVertical(lipgloss.Center, box, strings.Join(footer, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// overlayHeader renders the user details above the repository list.
func (m *Model) overlayHeader() string {
	u, _ := m.ctrl.SelectedUser()

	lines := []string{
		mutedStyle.Render("avatar: " + u.AvatarURL),
		loginStyle.Render(u.Login),
		mutedStyle.Render("id no: " + u.IDString()),
		linkStyle.Render("Profile URL") + " " + mutedStyle.Render(u.HTMLURL),
		sectionStyle.Render("Repositories:"),
		fmt.Sprintf("Sort by: %s", cursorStyle.Render(m.ctrl.Repos().Criterion().Label())),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m *Model) overlayHeaderLines() int {
	return lipgloss.Height(m.overlayHeader())
}

// refreshOverlay rebuilds the viewport content from the controller.
func (m *Model) refreshOverlay() {
	var b strings.Builder
	b.WriteString(m.overlayHeader())
	b.WriteString("\n")

	repos := m.ctrl.Repos().Sorted()
	if len(repos) == 0 {
		b.WriteString(mutedStyle.Render("No repositories found."))
		m.viewport.SetContent(b.String())
		return
	}

	width := max(10, m.viewport.Width-2)
	for i, r := range repos {
		b.WriteString(m.renderRepo(r, i == m.repoCursor, width))
	}
	m.viewport.SetContent(strings.TrimSuffix(b.String(), "\n"))
}

// renderRepo renders one repository as exactly repoBlockLines lines.
func (m *Model) renderRepo(r github.Repository, selected bool, width int) string {
	name := runewidth.Truncate(r.Name, width, "…")
	prefix := "  "
	nameStyle := loginStyle
	if selected {
		prefix = cursorStyle.Render("▸ ")
		nameStyle = selectedLoginStyle
	}

	desc := runewidth.Truncate(strings.ReplaceAll(r.DescriptionOrDefault(), "\n", " "), width, "…")
	stats := fmt.Sprintf("★ %d   forks %d   %s", r.StargazersCount, r.ForksCount, r.CreatedDate())

	return prefix + nameStyle.Render(name) + "\n" +
		"  " + mutedStyle.Render(desc) + "\n" +
		"  " + mutedStyle.Render(stats) + "\n" +
		"\n"
}
