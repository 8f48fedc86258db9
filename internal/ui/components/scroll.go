package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/ui/keys"
)

// Scroller tracks a line offset into content taller than its window.
type Scroller struct {
	Offset int
	// page is the window height seen by the last Window call.
	page int
}

// Update scrolls by line or page over content of total lines.
func (s Scroller) Update(msg tea.Msg, total int) Scroller {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s
	}
	step := max(s.page-1, 1)
	switch {
	case key.Matches(kmsg, keys.Up):
		s.Offset--
	case key.Matches(kmsg, keys.Down):
		s.Offset++
	case key.Matches(kmsg, keys.PageUp):
		s.Offset -= step
	case key.Matches(kmsg, keys.PageDown):
		s.Offset += step
	}
	s.Offset = s.clamp(s.Offset, total)
	return s
}

// Window returns the visible slice of lines for a window of height rows.
func (s *Scroller) Window(lines []string, height int) []string {
	s.page = max(height, 1)
	s.Offset = s.clamp(s.Offset, len(lines))
	end := min(s.Offset+s.page, len(lines))
	return lines[s.Offset:end]
}

// CanScroll reports whether lines do not fit the last window.
func (s Scroller) CanScroll(total int) bool {
	return s.page > 0 && total > s.page
}

func (s Scroller) clamp(offset, total int) int {
	maxOffset := total - 1
	if s.page > 0 {
		maxOffset = total - s.page
	}
	return max(min(offset, maxOffset), 0)
}
