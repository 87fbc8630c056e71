package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorSkel    = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#3F3F46"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 1).
			Align(lipgloss.Center)

	loginStyle         = lipgloss.NewStyle().Bold(true)
	selectedLoginStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	cursorStyle        = lipgloss.NewStyle().Foreground(colorPrimary)
	mutedStyle         = lipgloss.NewStyle().Foreground(colorMuted)
	skeletonStyle      = lipgloss.NewStyle().Foreground(colorSkel)
	errorStyle         = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	noticeStyle        = lipgloss.NewStyle().Foreground(colorWarn)
	linkStyle          = lipgloss.NewStyle().Foreground(colorPrimary).Underline(true)
	sectionStyle       = lipgloss.NewStyle().Bold(true).MarginTop(1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)
)
