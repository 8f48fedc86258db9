package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glassquiz/glassquiz/internal/ui/keys"
	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// OptionPicker is a four-option answer selector. It only tracks the
// highlighted option; the screen decides what picking one means.
type OptionPicker struct {
	Options  []string
	Selected int
}

// NewOptionPicker creates a picker with the first option highlighted.
func NewOptionPicker(options []string) OptionPicker {
	return OptionPicker{Options: options}
}

// Update moves the highlight. It reports the index of a picked option, or
// -1 if the message did not pick one. Enter picks the highlighted option;
// 1-4 and a-d pick directly.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(p.Options) == 0 {
		return p, -1
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		if p.Selected > 0 {
			p.Selected--
		}
	case key.Matches(kmsg, keys.Down):
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case key.Matches(kmsg, keys.Select):
		return p, p.Selected
	default:
		if i := keys.ChoiceIndex(kmsg); i >= 0 && i < len(p.Options) {
			p.Selected = i
			return p, i
		}
	}
	return p, -1
}

// View renders the options as glass buttons at width w.
func (p OptionPicker) View(w int) string {
	rows := make([]string, 0, len(p.Options))
	for i, opt := range p.Options {
		rows = append(rows, GlassButton(fmt.Sprintf("%s)  %s", optionLabel(i), opt), i == p.Selected, w))
	}
	return strings.Join(rows, "\n")
}

// RenderReviewedOptions lists options with the correct one marked ✓ and a
// different chosen one marked ✗.
func RenderReviewedOptions(options []string, correct, chosen int) string {
	var b strings.Builder
	for i, opt := range options {
		line := fmt.Sprintf("%s)  %s", optionLabel(i), opt)
		switch {
		case i == correct:
			b.WriteString(theme.Correct.Render("✓ " + line))
		case i == chosen:
			b.WriteString(theme.Incorrect.Render("✗ " + line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + line))
		}
		if i < len(options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func optionLabel(i int) string {
	if i >= 0 && i < len(optionLabels) {
		return optionLabels[i]
	}
	return fmt.Sprint(i + 1)
}
