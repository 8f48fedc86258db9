package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glassquiz/glassquiz/internal/catalog"
	"github.com/glassquiz/glassquiz/internal/quiz"
	"github.com/glassquiz/glassquiz/internal/screen"
	"github.com/glassquiz/glassquiz/internal/ui/components"
	"github.com/glassquiz/glassquiz/internal/ui/keys"
	"github.com/glassquiz/glassquiz/internal/ui/layout"
	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

// HomeScreen lists the catalog topics and the session views.
type HomeScreen struct {
	ctrl *quiz.Controller
	menu components.Menu
	err  error
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a HomeScreen backed by ctrl.
func New(ctrl *quiz.Controller) *HomeScreen {
	h := &HomeScreen{ctrl: ctrl}
	h.rebuild()
	return h
}

// Init refreshes the menu counts; they change after every run.
func (h *HomeScreen) Init() tea.Cmd {
	h.err = nil
	h.rebuild()
	return nil
}

func (h *HomeScreen) rebuild() {
	cat := h.ctrl.Catalog()
	topics := cat.Topics()

	items := make([]components.MenuItem, 0, len(topics)+3)
	for _, t := range topics {
		items = append(items, components.MenuItem{
			Label:  theme.TopicGlyph(t.Image) + " " + t.Name,
			Detail: questionCount(len(cat.QuestionsForTopic(t.ID))),
			Action: h.selectTopic(t),
		})
	}

	wrong := len(h.ctrl.WrongAnswers())
	items = append(items,
		components.MenuItem{Label: "🏆 Ranking", Action: func() tea.Cmd {
			h.ctrl.ViewRanking()
			return nil
		}},
		components.MenuItem{Label: "📖 Wrong Answers", Detail: fmt.Sprintf("(%d)", wrong), Action: func() tea.Cmd {
			h.ctrl.ViewWrongAnswers()
			return nil
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) selectTopic(t catalog.Topic) func() tea.Cmd {
	return func() tea.Cmd {
		h.err = h.ctrl.SelectTopic(t)
		return nil
	}
}

func questionCount(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + 6)
	cw := components.ContentWidth(width)

	sections := []string{renderBanner(cw, compact), renderSubtitle(cw)}
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderCrystal(crystalFor(h.ctrl))))
	}
	sections = append(sections, h.menu.View(cw))
	if h.err != nil {
		sections = append(sections, theme.Incorrect.Width(cw).Render(h.err.Error()))
	}

	return components.GlassFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(keys.Up, keys.Down, keys.Select, keys.Quit)
}
