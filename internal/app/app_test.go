package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	m, err := NewModel(Options{})
	if err != nil {
		t.Fatal(err)
	}
	m.Init()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	return updated.(AppModel)
}

func send(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(AppModel)
	}
	return m
}

func TestApp_FullRun(t *testing.T) {
	m := newTestModel(t)

	// First topic: Android Basics, answers are option B for both questions.
	m = send(t, m, specialKey(tea.KeyEnter))
	if m.ctrl.Screen() != quiz.ScreenQuiz {
		t.Fatalf("screen = %v, want quiz", m.ctrl.Screen())
	}
	if m.router.Active().Title() != "Android Basics" {
		t.Errorf("active title = %q", m.router.Active().Title())
	}

	m = send(t, m, keyPress('2'), keyPress('1'))
	if m.ctrl.Screen() != quiz.ScreenResult {
		t.Fatalf("screen = %v, want result", m.ctrl.Screen())
	}
	view := m.render()
	for _, want := range []string{"Quiz complete!", "50%", "Review Wrong Answers", "1 runs", "✗ 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("result view missing %q", want)
		}
	}

	m = send(t, m, keyPress('w'))
	if m.ctrl.Screen() != quiz.ScreenWrongAnswers {
		t.Fatalf("screen = %v, want wrong-answers", m.ctrl.Screen())
	}
	if !strings.Contains(m.render(), "What is the file extension") {
		t.Error("wrong answers view should show the missed question")
	}

	m = send(t, m, specialKey(tea.KeyEscape))
	if m.ctrl.Screen() != quiz.ScreenHome {
		t.Errorf("screen = %v, want home", m.ctrl.Screen())
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestApp_ViewBeforeSize(t *testing.T) {
	m, err := NewModel(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.render() != "" {
		t.Error("expected empty view before the first resize")
	}
}
