package quiz

import "fmt"

// Screen identifies which view the session is showing.
type Screen int

const (
	ScreenHome         Screen = iota // Topic selection (initial)
	ScreenQuiz                       // Answering a topic's questions
	ScreenResult                     // Score of the run that just finished
	ScreenWrongAnswers               // Session-wide wrong answer review
	ScreenRanking                    // Leaderboard of completed runs
)

// AllScreens returns every Screen variant in declaration order.
func AllScreens() []Screen {
	return []Screen{ScreenHome, ScreenQuiz, ScreenResult, ScreenWrongAnswers, ScreenRanking}
}

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenQuiz:
		return "quiz"
	case ScreenResult:
		return "result"
	case ScreenWrongAnswers:
		return "wrong-answers"
	case ScreenRanking:
		return "ranking"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}
