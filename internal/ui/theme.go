package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted    = ac("240", "243")
	colorAccent   = ac("27", "62")
	colorSelected = ac("#e9e9e9", "#262626")
	colorError    = ac("160", "203")

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	ruleStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	durationStyle = lipgloss.NewStyle().Foreground(colorMuted)
	startStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	selectedStyle = lipgloss.NewStyle().Background(colorSelected).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	helpStyle     = lipgloss.NewStyle().Foreground(colorMuted)
)

// applyColorProfilePreference honors NO_COLOR and otherwise follows the terminal.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = helpStyle.Bold(true)
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle
	h.Styles.FullKey = helpStyle.Bold(true)
	h.Styles.FullDesc = helpStyle
	h.Styles.FullSeparator = helpStyle
	return h
}
