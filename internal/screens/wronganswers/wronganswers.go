package wronganswers

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/glassquiz/glassquiz/internal/quiz"
	"github.com/glassquiz/glassquiz/internal/screen"
	"github.com/glassquiz/glassquiz/internal/ui/components"
	"github.com/glassquiz/glassquiz/internal/ui/keys"
	"github.com/glassquiz/glassquiz/internal/ui/layout"
	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

// WrongAnswersScreen lists every wrong answer of the session, oldest first.
type WrongAnswersScreen struct {
	ctrl    *quiz.Controller
	entries []quiz.WrongAnswer
	scroll  components.Scroller
	lines   int
}

var (
	_ screen.Screen          = (*WrongAnswersScreen)(nil)
	_ screen.KeyHintProvider = (*WrongAnswersScreen)(nil)
)

// New creates a WrongAnswersScreen backed by ctrl.
func New(ctrl *quiz.Controller) *WrongAnswersScreen {
	return &WrongAnswersScreen{ctrl: ctrl}
}

func (s *WrongAnswersScreen) Init() tea.Cmd {
	s.entries = s.ctrl.WrongAnswers()
	s.scroll = components.Scroller{}
	return nil
}

func (s *WrongAnswersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	if key.Matches(kmsg, keys.Back, keys.Select) {
		s.ctrl.GoHome()
		return s, nil
	}
	s.scroll = s.scroll.Update(kmsg, s.lines)
	return s, nil
}

func (s *WrongAnswersScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	heading := components.Heading("📖 Wrong Answer Notes", cw)

	if len(s.entries) == 0 {
		s.lines = 0
		body := components.GlassCard(strings.Join([]string{
			"🎉",
			theme.Correct.Render("Congratulations!"),
			theme.Hint.Render("No wrong answers"),
		}, "\n"), cw)
		return components.GlassFrame(heading+"\n\n"+body, width, height)
	}

	count := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Total: %d", len(s.entries)))

	var cards []string
	for i, wa := range s.entries {
		cards = append(cards, renderEntry(i+1, wa, cw))
	}
	lines := strings.Split(strings.Join(cards, "\n"), "\n")
	s.lines = len(lines)

	// Frame border (2) + heading, count and their gaps (4).
	window := s.scroll.Window(lines, height-6)
	return components.GlassFrame(strings.Join([]string{heading, count, "", strings.Join(window, "\n")}, "\n"), width, height)
}

func renderEntry(n int, wa quiz.WrongAnswer, cw int) string {
	tag := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("#%d  %s", n, wa.TopicName))
	question := theme.Body.Bold(true).Render(wa.Question.Text)
	options := components.RenderReviewedOptions(wa.Question.Options, wa.Question.AnswerIndex, wa.UserAnswerIndex)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(max(cw-2, 0)).
		Padding(0, 1).
		Render(tag + "\n" + question + "\n\n" + options)
}

func (s *WrongAnswersScreen) Title() string {
	return "Wrong Answers"
}

func (s *WrongAnswersScreen) KeyHints() []layout.KeyHint {
	home := key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("Esc", "home"))
	if !s.scroll.CanScroll(s.lines) {
		return layout.HintsFromBindings(home, keys.Quit)
	}
	return layout.HintsFromBindings(keys.Up, keys.Down, keys.PageDown, home, keys.Quit)
}
