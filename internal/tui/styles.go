package tui

import (
	"market-mood/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	captionStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true)

	scoreStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().Faint(true)

	warnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f57c00")).
			Foreground(lipgloss.Color("#f57c00")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().Faint(true).Italic(true)

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7"))

	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func bandColor(b domain.Band) lipgloss.Color {
	return lipgloss.Color(b.Color())
}

func bandStyle(b domain.Band) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(bandColor(b))
}

func badgeStyle(b domain.Band) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(bandColor(b)).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1)
}
