package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#8524a6")
	colorRed       = lipgloss.Color("#FF0000")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			MarginBottom(1)

	keyHintStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true).
			Margin(1)
)

// table styling shared by all sort modes
func tableStyles() table.Styles {
	s := table.DefaultStyles()

	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorDarkGray).
		BorderBottom(true).
		Bold(true).
		Foreground(colorWhite)

	s.Selected = s.Selected.
		Foreground(colorWhite).
		Background(colorPurple).
		Bold(false)

	return s
}
