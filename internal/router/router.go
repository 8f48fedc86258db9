package router

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/quiz"
	"github.com/glassquiz/glassquiz/internal/screen"
)

// ScreenSource reports which screen the session is on.
type ScreenSource interface {
	Screen() quiz.Screen
}

// Router shows the screen registered for the session's current quiz.Screen.
// After every update it re-reads the source; when the session has moved to
// another screen, that screen becomes active and its Init runs.
type Router struct {
	src     ScreenSource
	screens map[quiz.Screen]screen.Screen
	current quiz.Screen
}

// New creates a Router. Every quiz.Screen variant must have a renderer.
func New(src ScreenSource, screens map[quiz.Screen]screen.Screen) (*Router, error) {
	var missing []quiz.Screen
	for _, s := range quiz.AllScreens() {
		if screens[s] == nil {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("router: no renderer for screens %v", missing)
	}
	return &Router{
		src:     src,
		screens: screens,
		current: src.Screen(),
	}, nil
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.Active().Init()
}

// Current returns the session screen the router is showing.
func (r *Router) Current() quiz.Screen {
	return r.current
}

// Active returns the renderer for the current screen.
func (r *Router) Active() screen.Screen {
	return r.screens[r.current]
}

// Update forwards a message to the active screen, then follows any screen
// change the message caused.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := r.Active().Update(msg)
	r.screens[r.current] = updated
	return tea.Batch(cmd, r.Sync())
}

// Sync activates the source's current screen if it changed since the last
// call, returning the new screen's Init command.
func (r *Router) Sync() tea.Cmd {
	next := r.src.Screen()
	if next == r.current {
		return nil
	}
	r.current = next
	return r.Active().Init()
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
