package home

import (
	"charm.land/lipgloss/v2"

	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

const bannerArt = `░█▀▀░█░░░█▀█░█▀▀░█▀▀░░░█▀█░█░█░▀█▀░▀▀█
░█░█░█░░░█▀█░▀▀█░▀▀█░░░█░█░█░█░░█░░▄▀░
░▀▀▀░▀▀▀░▀░▀░▀▀▀░▀▀▀░░░▀▀█░▀▀▀░▀▀▀░▀▀▀`

const bannerCompact = "✨ Smart Quiz"

// renderBanner returns the title art, or a one-line title when the pane is
// too narrow or short.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := bannerArt
	if compact || cw < lipgloss.Width(bannerArt) {
		text = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

func renderSubtitle(cw int) string {
	return theme.Subtitle.Width(cw).Render("Choose a topic")
}
