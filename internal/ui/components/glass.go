package components

import (
	"charm.land/lipgloss/v2"

	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all glass panes.
// All panes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the pane border (2) + inner padding (4)
	return min(max(frameWidth-6, 24), 64)
}

// GlassFrame centers content inside a thin rounded pane filling the given
// area.
func GlassFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// GlassCard wraps content in a frosted card at content width cw.
func GlassCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Glass).
		Foreground(theme.Text).
		Width(max(cw-2, 0)).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// GlassButton renders a full-width button; the selected one glows.
func GlassButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Secondary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// Heading renders a centered bold title line at width cw.
func Heading(text string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(text)
}
