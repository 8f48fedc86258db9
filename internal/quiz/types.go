package quiz

import (
	"time"

	"github.com/glassquiz/glassquiz/internal/catalog"
)

// QuizResult is the outcome of one completed run.
type QuizResult struct {
	RunID     string
	Topic     catalog.Topic
	Score     int
	Total     int
	Timestamp time.Time
}

// Percent returns the score as a whole percentage of Total.
func (r QuizResult) Percent() int {
	if r.Total <= 0 {
		return 0
	}
	return r.Score * 100 / r.Total
}

// WrongAnswer records one incorrect selection.
type WrongAnswer struct {
	Question        catalog.Question
	UserAnswerIndex int
	// TopicName is the topic's display name when the answer was recorded.
	TopicName string
}

// ChosenOption returns the option text the user picked.
func (w WrongAnswer) ChosenOption() string {
	if !w.Question.HasOption(w.UserAnswerIndex) {
		return ""
	}
	return w.Question.Options[w.UserAnswerIndex]
}

// RankingEntry is one leaderboard row.
type RankingEntry struct {
	RunID     string
	TopicName string
	Score     int
	Total     int
	Date      string
	Timestamp time.Time
}

// Percent returns the score as a whole percentage of Total.
func (e RankingEntry) Percent() int {
	if e.Total <= 0 {
		return 0
	}
	return e.Score * 100 / e.Total
}

// Outcome reports what a single Answer call did.
type Outcome struct {
	Correct  bool
	Question catalog.Question
	// Finished is set when the answer completed the run; Result is then
	// the recorded result.
	Finished bool
	Result   QuizResult
}
