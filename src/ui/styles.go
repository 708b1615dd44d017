package ui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the original hardware-amber look: orange on deep teal.
var (
	colorBg     = lipgloss.Color("#193232")
	colorFg     = lipgloss.Color("#ff7b00")
	colorAccent = lipgloss.Color("#c4ff00")
	colorDim    = lipgloss.Color("#6b7f7f")
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorFg).
			Background(colorBg).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBg).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBg)

	waveStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorBg)

	gaugeFillStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorBg)

	gaugeRestStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(colorBg)

	activeKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorBg).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(colorBg)
)
