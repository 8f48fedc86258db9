package result

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

// ResultScreen shows the score of the run that just finished.
type ResultScreen struct {
	ctrl    *quiz.Controller
	result  quiz.QuizResult
	wrong   int
	buttons components.ButtonColumn
	err     error
}

var (
	_ screen.Screen          = (*ResultScreen)(nil)
	_ screen.KeyHintProvider = (*ResultScreen)(nil)
)

// New creates a ResultScreen backed by ctrl.
func New(ctrl *quiz.Controller) *ResultScreen {
	return &ResultScreen{ctrl: ctrl}
}

// Init loads the last result and offers the review action only when the
// topic has wrong answers on record.
func (s *ResultScreen) Init() tea.Cmd {
	s.err = nil
	s.result, _ = s.ctrl.LastResult()
	s.wrong = s.ctrl.WrongAnswerCountForTopic(s.result.Topic.ID)

	buttons := []components.Button{{
		Label:    "Try Again",
		Shortcut: &keys.Restart,
		OnPress: func() tea.Cmd {
			s.err = s.ctrl.RestartQuiz()
			return nil
		},
	}}
	if s.wrong > 0 {
		buttons = append(buttons, components.Button{
			Label:    "Review Wrong Answers",
			Shortcut: &keys.Review,
			OnPress: func() tea.Cmd {
				s.ctrl.ViewWrongAnswers()
				return nil
			},
		})
	}
	buttons = append(buttons, components.Button{
		Label:    "Home",
		Shortcut: &keys.Back,
		OnPress: func() tea.Cmd {
			s.ctrl.GoHome()
			return nil
		},
	})
	s.buttons = components.NewButtonColumn(buttons...)
	return nil
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.buttons, cmd = s.buttons.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	score := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprint(s.result.Score)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" / %d", s.result.Total))

	card := []string{
		"🎉",
		theme.Title.Render("Quiz complete!"),
		theme.Subtitle.Render(s.result.Topic.Name),
		"",
		score,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d%%", s.result.Percent())),
		theme.Hint.Render(verdict(s.result.Percent())),
	}
	if s.wrong > 0 {
		card = append(card, theme.Incorrect.Render(fmt.Sprintf("Wrong: %d", s.wrong)))
	}

	sections := []string{
		components.GlassCard(strings.Join(card, "\n"), cw),
		center.Render(s.buttons.View(min(cw, 32))),
	}
	if s.err != nil {
		sections = append(sections, center.Inherit(theme.Incorrect).Render(s.err.Error()))
	}
	return components.GlassFrame(strings.Join(sections, "\n\n"), width, height)
}

// verdict is the one-line comment under the percentage.
func verdict(percent int) string {
	switch {
	case percent == 100:
		return "Perfect score!"
	case percent >= 70:
		return "Great job!"
	case percent >= 40:
		return "Not bad, keep practicing."
	default:
		return "Review and try again."
	}
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	bindings := []key.Binding{keys.Up, keys.Down, keys.Select, keys.Restart}
	if s.wrong > 0 {
		bindings = append(bindings, keys.Review)
	}
	bindings = append(bindings, keys.Back)
	return layout.HintsFromBindings(bindings...)
}
