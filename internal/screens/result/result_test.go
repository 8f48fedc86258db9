package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/catalog"
	"github.com/glassquiz/glassquiz/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// finishRun plays the first default topic with the given answers and
// returns a ResultScreen for it.
func finishRun(t *testing.T, correctAll bool) (*ResultScreen, *quiz.Controller) {
	t.Helper()
	ctrl := quiz.NewController(catalog.Default(), quiz.Options{})
	topic := ctrl.Catalog().Topics()[0]
	if err := ctrl.SelectTopic(topic); err != nil {
		t.Fatal(err)
	}
	for i, q := range ctrl.Questions() {
		choice := q.AnswerIndex
		if !correctAll && i == 0 {
			choice = (choice + 1) % catalog.OptionCount
		}
		if _, err := ctrl.Answer(choice); err != nil {
			t.Fatal(err)
		}
	}
	s := New(ctrl)
	s.Init()
	return s, ctrl
}

func TestResultScreen_View(t *testing.T) {
	s, _ := finishRun(t, false)
	view := s.View(80, 30)
	for _, want := range []string{"Quiz complete!", "Android Basics", "/ 2", "50%", "Wrong: 1", "Try Again", "Review Wrong Answers", "Home"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultScreen_PerfectRunHidesReview(t *testing.T) {
	s, _ := finishRun(t, true)
	if len(s.buttons.Buttons) != 2 {
		t.Fatalf("expected Try Again and Home only, got %d buttons", len(s.buttons.Buttons))
	}
	if strings.Contains(s.View(80, 30), "Review Wrong Answers") {
		t.Error("perfect run should not offer review")
	}
	if !strings.Contains(s.View(80, 30), "Perfect score!") {
		t.Error("perfect run should say so")
	}
}

func TestResultScreen_Restart(t *testing.T) {
	s, ctrl := finishRun(t, false)
	s.Update(specialKey(tea.KeyEnter))
	if ctrl.Screen() != quiz.ScreenQuiz || ctrl.Index() != 0 {
		t.Errorf("enter on Try Again: screen=%v index=%d", ctrl.Screen(), ctrl.Index())
	}
}

func TestResultScreen_Shortcuts(t *testing.T) {
	s, ctrl := finishRun(t, false)
	s.Update(keyPress('w'))
	if ctrl.Screen() != quiz.ScreenWrongAnswers {
		t.Errorf("w: screen = %v, want wrong-answers", ctrl.Screen())
	}

	s, ctrl = finishRun(t, false)
	s.Update(specialKey(tea.KeyEscape))
	if ctrl.Screen() != quiz.ScreenHome {
		t.Errorf("esc: screen = %v, want home", ctrl.Screen())
	}

	s, ctrl = finishRun(t, false)
	s.Update(keyPress('r'))
	if ctrl.Screen() != quiz.ScreenQuiz {
		t.Errorf("r: screen = %v, want quiz", ctrl.Screen())
	}
}

func TestResultScreen_KeyHints(t *testing.T) {
	s, _ := finishRun(t, true)
	if len(s.KeyHints()) != 5 {
		t.Errorf("KeyHints length = %d, want 5", len(s.KeyHints()))
	}
	s, _ = finishRun(t, false)
	if len(s.KeyHints()) != 6 {
		t.Errorf("KeyHints length = %d, want 6", len(s.KeyHints()))
	}
}

func TestVerdict(t *testing.T) {
	tests := map[int]string{100: "Perfect", 80: "Great", 50: "Not bad", 0: "Review"}
	for pct, want := range tests {
		if got := verdict(pct); !strings.Contains(got, want) {
			t.Errorf("verdict(%d) = %q, want it to contain %q", pct, got, want)
		}
	}
}
