package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar filled with the theme
// gradient.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Filled returns how many of barWidth cells are filled.
func (p ProgressBar) Filled(barWidth int) int {
	return min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := max(p.Width-labelWidth-percentWidth, 4)
	filled := p.Filled(barWidth)

	var bar strings.Builder
	for i := range filled {
		stop := theme.Gradient[i*len(theme.Gradient)/barWidth]
		bar.WriteString(lipgloss.NewStyle().Background(stop).Render(" "))
	}
	bar.WriteString(lipgloss.NewStyle().
		Background(theme.Glass).
		Render(strings.Repeat(" ", barWidth-filled)))
	result += bar.String()

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
