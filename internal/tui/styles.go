package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorMantle  lipgloss.Color = "#181825"
	colorSurface lipgloss.Color = "#313244"
	colorSuccess lipgloss.Color = "#a6e3a1"
)

// styles are built once per program so the accent colour from config reaches
// every widget without threading it through each call site.
type styles struct {
	accent lipgloss.Color

	header    lipgloss.Style
	headerBar lipgloss.Style
	status    lipgloss.Style
	footer    lipgloss.Style
	key       lipgloss.Style
	helpDesc  lipgloss.Style
}

func newStyles(accent string) styles {
	ac := lipgloss.Color(accent)
	return styles{
		accent: ac,
		header: lipgloss.NewStyle().
			Foreground(ac).
			Bold(true).
			Padding(0, 1),
		headerBar: lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText),
		status: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			Background(colorMantle),
		key:      lipgloss.NewStyle().Foreground(ac).Bold(true),
		helpDesc: lipgloss.NewStyle().Foreground(colorMuted),
	}
}
