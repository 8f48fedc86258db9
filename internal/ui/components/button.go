package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/ui/keys"
)

// Button is one action in a ButtonColumn.
type Button struct {
	Label string
	// Shortcut triggers the button directly; nil means none.
	Shortcut *key.Binding
	OnPress  func() tea.Cmd
}

// ButtonColumn is a vertical stack of glass buttons with one focused.
type ButtonColumn struct {
	Buttons []Button
	Focused int
}

// NewButtonColumn creates a button column focused on the first button.
func NewButtonColumn(buttons ...Button) ButtonColumn {
	return ButtonColumn{Buttons: buttons}
}

// Update moves focus and fires buttons.
func (c ButtonColumn) Update(msg tea.Msg) (ButtonColumn, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Buttons) == 0 {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up, keys.Left):
		if c.Focused > 0 {
			c.Focused--
		}
		return c, nil
	case key.Matches(kmsg, keys.Down, keys.Right):
		if c.Focused < len(c.Buttons)-1 {
			c.Focused++
		}
		return c, nil
	case key.Matches(kmsg, keys.Select):
		return c, c.press(c.Focused)
	}

	for i, b := range c.Buttons {
		if b.Shortcut != nil && key.Matches(kmsg, *b.Shortcut) {
			c.Focused = i
			return c, c.press(i)
		}
	}
	return c, nil
}

func (c ButtonColumn) press(i int) tea.Cmd {
	if i < 0 || i >= len(c.Buttons) || c.Buttons[i].OnPress == nil {
		return nil
	}
	return c.Buttons[i].OnPress()
}

// View renders the buttons at the given width.
func (c ButtonColumn) View(width int) string {
	rows := make([]string, 0, len(c.Buttons))
	for i, b := range c.Buttons {
		rows = append(rows, GlassButton(b.Label, i == c.Focused, width))
	}
	return strings.Join(rows, "\n")
}
