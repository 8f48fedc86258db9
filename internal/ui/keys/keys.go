// Package keys holds the key bindings shared by every screen.
package keys

import (
	"fmt"

	"charm.land/bubbles/v2/key"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	Left = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	)
	Right = key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "right"),
	)
	Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "quit"),
	)
	Restart = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "try again"),
	)
	Review = key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "wrong answers"),
	)
	PageUp = key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "page up"),
	)
	PageDown = key.NewBinding(
		key.WithKeys("pgdown", "space"),
		key.WithHelp("PgDn", "page down"),
	)

	// Choose answers directly: 1-4 or a-d.
	Choose = [4]key.Binding{
		key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1-4", "answer")),
		key.NewBinding(key.WithKeys("2", "b")),
		key.NewBinding(key.WithKeys("3", "c")),
		key.NewBinding(key.WithKeys("4", "d")),
	}
)

// ChoiceIndex returns the option index bound to msg, or -1.
func ChoiceIndex(msg fmt.Stringer) int {
	for i, b := range Choose {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}
