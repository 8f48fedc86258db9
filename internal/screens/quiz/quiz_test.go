package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/glassquiz/glassquiz/internal/catalog"
	qz "github.com/glassquiz/glassquiz/internal/quiz"
)

// recordingPlayer counts sounds played.
type recordingPlayer struct {
	correct, wrong int
}

func (p *recordingPlayer) PlayCorrect() { p.correct++ }
func (p *recordingPlayer) PlayWrong()   { p.wrong++ }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runCmd executes cmd and any batched commands, returning the messages
// produced. Tick commands block until they fire.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			if c == nil {
				continue
			}
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	opts := []string{"red", "green", "blue", "cyan"}
	c, err := catalog.New(
		[]catalog.Topic{{ID: 1, Name: "Colors"}, {ID: 2, Name: "Nothing"}},
		[]catalog.Question{
			{ID: 1, TopicID: 1, Text: "Sky?", Options: opts, AnswerIndex: 2},
			{ID: 2, TopicID: 1, Text: "Grass?", Options: opts, AnswerIndex: 1},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func startQuiz(t *testing.T, topicID int) (*QuizScreen, *qz.Controller, *recordingPlayer) {
	t.Helper()
	cat := testCatalog(t)
	ctrl := qz.NewController(cat, qz.Options{})
	topic, _ := cat.Topic(topicID)
	if err := ctrl.SelectTopic(topic); err != nil {
		t.Fatal(err)
	}
	player := &recordingPlayer{}
	s := New(ctrl, player)
	s.Init()
	return s, ctrl, player
}

func TestQuizScreen_View(t *testing.T) {
	s, _, _ := startQuiz(t, 1)
	view := s.View(80, 30)
	for _, want := range []string{"Question 1 / 2", "Sky?", "A)  red", "D)  cyan", "Score 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if s.Title() != "Colors" {
		t.Errorf("Title = %q, want Colors", s.Title())
	}
}

func TestQuizScreen_NumberKeyAnswers(t *testing.T) {
	s, ctrl, player := startQuiz(t, 1)

	_, cmd := s.Update(keyPress('3'))
	msgs := runCmd(cmd)

	if ctrl.Score() != 1 || ctrl.Index() != 1 {
		t.Errorf("score=%d index=%d, want 1 and 1", ctrl.Score(), ctrl.Index())
	}
	if player.correct != 1 {
		t.Errorf("correct sound played %d times, want 1", player.correct)
	}
	if s.flash == nil || !s.flash.correct {
		t.Fatal("expected a correct flash")
	}
	if !strings.Contains(s.View(80, 30), "Correct!") {
		t.Error("view should show the flash")
	}

	var done *flashDoneMsg
	for _, m := range msgs {
		if d, ok := m.(flashDoneMsg); ok {
			done = &d
		}
	}
	if done == nil {
		t.Fatal("expected a flash timer message")
	}
	s.Update(*done)
	if s.flash != nil {
		t.Error("flash should clear when its timer fires")
	}
}

func TestQuizScreen_StaleFlashTimerIgnored(t *testing.T) {
	s, _, _ := startQuiz(t, 1)
	s.Update(keyPress('1'))
	stale := flashDoneMsg{seq: s.flashSeq - 1}
	s.Update(stale)
	if s.flash == nil {
		t.Error("stale timer should not clear the current flash")
	}
}

func TestQuizScreen_EnterAnswersHighlighted(t *testing.T) {
	s, ctrl, player := startQuiz(t, 1)

	s.Update(specialKey(tea.KeyDown))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	runCmd(cmd)

	if ctrl.Score() != 0 || len(ctrl.WrongAnswers()) != 1 {
		t.Errorf("option B should be wrong: score=%d wrong=%d", ctrl.Score(), len(ctrl.WrongAnswers()))
	}
	if player.wrong != 1 {
		t.Errorf("wrong sound played %d times, want 1", player.wrong)
	}
	if s.picker.Selected != 0 {
		t.Error("picker should reset for the next question")
	}
	if !strings.Contains(s.View(80, 30), "Answer: blue") {
		t.Error("wrong flash should reveal the answer")
	}
}

func TestQuizScreen_LastAnswerFinishes(t *testing.T) {
	s, ctrl, player := startQuiz(t, 1)

	s.Update(keyPress('3'))
	_, cmd := s.Update(keyPress('2'))
	runCmd(cmd)

	if ctrl.Screen() != qz.ScreenResult {
		t.Errorf("screen = %v, want result", ctrl.Screen())
	}
	if player.correct != 1 {
		// Only the last answer's command was run.
		t.Errorf("correct sounds = %d, want 1", player.correct)
	}
}

func TestQuizScreen_EscCancels(t *testing.T) {
	s, ctrl, _ := startQuiz(t, 1)
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEscape))

	if ctrl.Screen() != qz.ScreenHome {
		t.Errorf("screen = %v, want home", ctrl.Screen())
	}
	if len(ctrl.Rankings()) != 0 {
		t.Error("cancelled run must not be ranked")
	}
}

func TestQuizScreen_EmptyTopic(t *testing.T) {
	s, ctrl, _ := startQuiz(t, 2)

	view := s.View(80, 30)
	if !strings.Contains(view, "No questions for this topic.") {
		t.Errorf("expected empty-topic notice:\n%s", view)
	}
	if len(s.KeyHints()) != 2 {
		t.Errorf("empty topic should offer back and quit only, got %v", s.KeyHints())
	}

	s.Update(keyPress('1'))
	if ctrl.Screen() != qz.ScreenQuiz {
		t.Error("answer keys should do nothing on an empty topic")
	}

	s.Update(specialKey(tea.KeyEnter))
	if ctrl.Screen() != qz.ScreenHome {
		t.Errorf("screen = %v, want home", ctrl.Screen())
	}
}

func TestQuizScreen_NilPlayer(t *testing.T) {
	cat := testCatalog(t)
	ctrl := qz.NewController(cat, qz.Options{})
	topic, _ := cat.Topic(1)
	if err := ctrl.SelectTopic(topic); err != nil {
		t.Fatal(err)
	}
	s := New(ctrl, nil)
	s.Init()
	_, cmd := s.Update(keyPress('1'))
	runCmd(cmd)
}
