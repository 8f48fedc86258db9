package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Glass palette: pale neon tones over a deep indigo backdrop.
var (
	Primary   = lipgloss.Color("#A78BFA") // Lavender
	Secondary = lipgloss.Color("#67E8F9") // Ice cyan
	Accent    = lipgloss.Color("#F0ABFC") // Orchid
	Success   = lipgloss.Color("#4ADE80") // Mint
	Error     = lipgloss.Color("#FB7185") // Coral
	Text      = lipgloss.Color("#F8FAFC") // Frost
	TextDim   = lipgloss.Color("#A5B4FC") // Haze
	BgDark    = lipgloss.Color("#1E1B4B") // Indigo night
	Glass     = lipgloss.Color("#312E81") // Frosted pane
	Border    = lipgloss.Color("#818CF8") // Pane edge
	Gold      = lipgloss.Color("#FACC15")
	Silver    = lipgloss.Color("#CBD5E1")
	Bronze    = lipgloss.Color("#D97706")
)

// Gradient is the progress bar color ramp, left to right.
var Gradient = []color.Color{
	lipgloss.Color("#67E8F9"),
	lipgloss.Color("#818CF8"),
	lipgloss.Color("#A78BFA"),
	lipgloss.Color("#F0ABFC"),
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// TopicGlyph returns the symbol drawn next to a topic for its image
// reference.
func TopicGlyph(image string) string {
	switch image {
	case "android":
		return "◉"
	case "compose":
		return "◈"
	case "kotlin":
		return "◆"
	default:
		return "●"
	}
}

// MedalColor returns the color for a 1-based leaderboard rank. Ranks past
// third get the dimmed text color.
func MedalColor(rank int) color.Color {
	switch rank {
	case 1:
		return Gold
	case 2:
		return Silver
	case 3:
		return Bronze
	default:
		return TextDim
	}
}
