package ui

import "github.com/charmbracelet/lipgloss"

// Theme: black surfaces + #f49221 accents, matching the project livery.
var (
	accent  = lipgloss.Color("#f49221")
	liveCol = lipgloss.Color("#69e36b")
	downCol = lipgloss.Color("#ff5c5c")
	textCol = lipgloss.Color("#eaeaea")
	dimCol  = lipgloss.Color("#bdbdbd")

	logoStyle = lipgloss.NewStyle().Foreground(textCol).Bold(true)

	liveStyle    = lipgloss.NewStyle().Foreground(liveCol).Bold(true)
	offlineStyle = lipgloss.NewStyle().Foreground(downCol).Bold(true)
	unknownStyle = lipgloss.NewStyle().Foreground(dimCol).Bold(true)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(accent)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	cardNameStyle = lipgloss.NewStyle().Foreground(textCol).Bold(true)
	droneArtStyle = lipgloss.NewStyle().Foreground(textCol)

	kvKeyStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	kvValueStyle = lipgloss.NewStyle().Foreground(textCol)

	mapStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(accent)

	mapLabelStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	movingStyle = lipgloss.NewStyle().Foreground(accent)
	noticeStyle = lipgloss.NewStyle().Foreground(accent)
	hintStyle   = lipgloss.NewStyle().Foreground(dimCol)
)
