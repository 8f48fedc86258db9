package quiz

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/glassquiz/glassquiz/internal/quiz"
	"github.com/glassquiz/glassquiz/internal/screen"
	"github.com/glassquiz/glassquiz/internal/sound"
	"github.com/glassquiz/glassquiz/internal/ui/components"
	"github.com/glassquiz/glassquiz/internal/ui/keys"
	"github.com/glassquiz/glassquiz/internal/ui/layout"
	"github.com/glassquiz/glassquiz/internal/ui/theme"
)

// FlashDuration is how long answer feedback stays on screen.
const FlashDuration = 600 * time.Millisecond

// flashDoneMsg clears the feedback flash with the matching sequence number.
type flashDoneMsg struct{ seq int }

// feedback is the flash shown after answering a question.
type feedback struct {
	correct bool
	answer  string
}

// QuizScreen walks the current topic's questions one at a time.
type QuizScreen struct {
	ctrl   *qz.Controller
	player sound.Player
	picker components.OptionPicker

	flash    *feedback
	flashSeq int
	err      error
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates a QuizScreen. A nil player is silent.
func New(ctrl *qz.Controller, player sound.Player) *QuizScreen {
	if player == nil {
		player = sound.Nop{}
	}
	return &QuizScreen{ctrl: ctrl, player: player}
}

// Init resets the screen for a fresh run.
func (s *QuizScreen) Init() tea.Cmd {
	s.flash = nil
	s.err = nil
	s.resetPicker()
	return nil
}

func (s *QuizScreen) resetPicker() {
	q, _ := s.ctrl.CurrentQuestion()
	s.picker = components.NewOptionPicker(q.Options)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flashDoneMsg:
		if msg.seq == s.flashSeq {
			s.flash = nil
		}
		return s, nil

	case tea.KeyPressMsg:
		if _, ok := s.ctrl.CurrentQuestion(); !ok {
			// Empty topic: the only way out is back home.
			if key.Matches(msg, keys.Back, keys.Select) {
				s.ctrl.GoHome()
			}
			return s, nil
		}

		if key.Matches(msg, keys.Back) {
			s.ctrl.CancelQuiz()
			return s, nil
		}

		var picked int
		s.picker, picked = s.picker.Update(msg)
		if picked >= 0 {
			return s, s.answer(picked)
		}
	}
	return s, nil
}

func (s *QuizScreen) answer(option int) tea.Cmd {
	out, err := s.ctrl.Answer(option)
	if err != nil {
		s.err = err
		return nil
	}
	s.err = nil

	play := s.playCmd(out.Correct)
	if out.Finished {
		return play
	}

	s.flashSeq++
	seq := s.flashSeq
	s.flash = &feedback{correct: out.Correct, answer: out.Question.CorrectOption()}
	s.resetPicker()

	return tea.Batch(play, tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	}))
}

// playCmd plays the answer sound off the update loop.
func (s *QuizScreen) playCmd(correct bool) tea.Cmd {
	p := s.player
	return func() tea.Msg {
		if correct {
			p.PlayCorrect()
		} else {
			p.PlayWrong()
		}
		return nil
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	q, ok := s.ctrl.CurrentQuestion()
	if !ok {
		return components.GlassFrame(renderEmptyTopic(cw), width, height)
	}

	total := len(s.ctrl.Questions())
	index := s.ctrl.Index()

	var sections []string
	sections = append(sections, components.NewProgressBar(
		fmt.Sprintf("Question %d / %d", index+1, total),
		float64(index+1)/float64(total),
		false,
		cw,
	).View())
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Right).
		Foreground(theme.Secondary).
		Render(fmt.Sprintf("Score %d", s.ctrl.Score())))
	sections = append(sections, components.GlassCard(theme.Body.Bold(true).Render(q.Text), cw))
	sections = append(sections, s.picker.View(cw))

	if line := s.statusLine(cw); line != "" {
		sections = append(sections, line)
	}

	return components.GlassFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *QuizScreen) statusLine(cw int) string {
	style := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	switch {
	case s.err != nil:
		return style.Inherit(theme.Incorrect).Render(s.err.Error())
	case s.flash == nil:
		return ""
	case s.flash.correct:
		return style.Inherit(theme.Correct).Render("✓ Correct!")
	default:
		return style.Inherit(theme.Incorrect).Render("✗ Wrong! Answer: " + s.flash.answer)
	}
}

func renderEmptyTopic(cw int) string {
	return strings.Join([]string{
		components.GlassCard(theme.Body.Render("No questions for this topic."), cw),
		components.GlassButton("Back", true, cw),
	}, "\n\n")
}

func (s *QuizScreen) Title() string {
	if t, ok := s.ctrl.CurrentTopic(); ok {
		return t.Name
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if _, ok := s.ctrl.CurrentQuestion(); !ok {
		return layout.HintsFromBindings(keys.Back, keys.Quit)
	}
	stop := key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "stop"))
	return layout.HintsFromBindings(keys.Up, keys.Down, keys.Select, keys.Choose[0], stop)
}
