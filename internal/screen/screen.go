// Package screen declares the contract between the router and the
// GlassQuiz screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/ui/layout"
)

// Screen renders one quiz state. Screens read their data from the quiz
// controller, so Init is called every time the router switches to them.
type Screen interface {
	// Init reloads the screen from the controller and may return a command.
	Init() tea.Cmd

	// Update handles a message. Operations on the controller happen here;
	// the router notices screen changes afterwards.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that list their keys in the
// footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
