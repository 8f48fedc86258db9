package quiz

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/glassquiz/glassquiz/internal/catalog"
)

// fallbackRankingName labels ranking entries whose topic cannot be named.
const fallbackRankingName = "Quiz"

// Catalog is the read-only question source the controller depends on.
type Catalog interface {
	Topics() []catalog.Topic
	QuestionsForTopic(topicID int) []catalog.Question
	Topic(id int) (catalog.Topic, bool)
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// FormatDate renders ranking timestamps. Defaults to FormatShortDate.
	FormatDate func(time.Time) string

	// Logger receives completion and precondition-failure records.
	// Defaults to a discarding logger.
	Logger *slog.Logger
}

// Controller owns the session state: the current screen, the active run
// and the session-wide wrong answer and ranking logs.
//
// A Controller is not safe for concurrent use. Every call must come from one
// goroutine; the Bubble Tea update loop satisfies this.
type Controller struct {
	cat        Catalog
	now        func() time.Time
	formatDate func(time.Time) string
	log        *slog.Logger

	screen     Screen
	topic      *catalog.Topic
	lastResult *QuizResult
	wrongLog   []WrongAnswer
	rankings   []RankingEntry

	// Run-scoped, reset whenever a run starts.
	questions []catalog.Question
	index     int
	score     int
	runWrong  []WrongAnswer
}

// NewController returns a controller on the Home screen with empty logs.
func NewController(cat Catalog, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FormatDate == nil {
		opts.FormatDate = FormatShortDate
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		cat:        cat,
		now:        opts.Now,
		formatDate: opts.FormatDate,
		log:        opts.Logger,
		screen:     ScreenHome,
	}
}

// SelectTopic starts a new run of topic and switches to the Quiz screen.
// A topic without questions is accepted; the run is then empty and the
// presentation layer shows a fallback notice.
func (c *Controller) SelectTopic(topic catalog.Topic) error {
	known, ok := c.cat.Topic(topic.ID)
	if !ok {
		return c.fail("select topic", ErrUnknownTopic, slog.Int("topic_id", topic.ID))
	}
	c.topic = &known
	c.startRun()
	c.log.Debug("quiz started", "topic_id", known.ID, "questions", len(c.questions))
	return nil
}

// RestartQuiz starts a new run of the most recently selected topic.
func (c *Controller) RestartQuiz() error {
	if c.topic == nil {
		return c.fail("restart quiz", ErrNoTopicSelected)
	}
	c.startRun()
	c.log.Debug("quiz restarted", "topic_id", c.topic.ID)
	return nil
}

func (c *Controller) startRun() {
	c.questions = c.cat.QuestionsForTopic(c.topic.ID)
	c.index = 0
	c.score = 0
	c.runWrong = nil
	c.screen = ScreenQuiz
}

// Answer scores optionIndex against the current question. Wrong answers are
// appended to the run and session logs. Answering the last question records
// the result, inserts a ranking entry and switches to the Result screen.
func (c *Controller) Answer(optionIndex int) (Outcome, error) {
	const op = "answer"
	switch {
	case c.screen != ScreenQuiz:
		return Outcome{}, c.fail(op, ErrNotInQuiz)
	case c.topic == nil:
		return Outcome{}, c.fail(op, ErrNoTopicSelected)
	case len(c.questions) == 0:
		return Outcome{}, c.fail(op, ErrNoQuestions, slog.Int("topic_id", c.topic.ID))
	}

	q := c.questions[c.index]
	if !q.HasOption(optionIndex) {
		return Outcome{}, c.fail(op, ErrOptionOutOfRange,
			slog.Int("question_id", q.ID), slog.Int("option", optionIndex))
	}

	out := Outcome{Question: q.Clone(), Correct: q.IsCorrect(optionIndex)}
	if out.Correct {
		c.score++
	} else {
		wa := WrongAnswer{Question: q, UserAnswerIndex: optionIndex, TopicName: c.topicName()}
		c.runWrong = append(c.runWrong, wa)
		c.wrongLog = append(c.wrongLog, wa)
	}

	if c.index < len(c.questions)-1 {
		c.index++
		return out, nil
	}

	out.Finished = true
	out.Result = c.finishRun()
	return out, nil
}

func (c *Controller) finishRun() QuizResult {
	now := c.now()
	res := QuizResult{
		RunID:     uuid.NewString(),
		Topic:     *c.topic,
		Score:     c.score,
		Total:     len(c.questions),
		Timestamp: now,
	}
	c.lastResult = &res
	c.rankings = insertRanking(c.rankings, RankingEntry{
		RunID:     res.RunID,
		TopicName: c.topicName(),
		Score:     res.Score,
		Total:     res.Total,
		Date:      c.formatDate(now),
		Timestamp: now,
	})
	c.screen = ScreenResult

	c.log.Info("quiz completed",
		"run_id", res.RunID,
		"topic_id", res.Topic.ID,
		"score", res.Score,
		"total", res.Total,
	)
	return res
}

// topicName resolves the current topic's display name through the catalog
// so ranking labels match the home screen.
func (c *Controller) topicName() string {
	if t, ok := c.cat.Topic(c.topic.ID); ok && t.Name != "" {
		return t.Name
	}
	if c.topic.Name != "" {
		return c.topic.Name
	}
	return fallbackRankingName
}

// CancelQuiz abandons the active run without recording a result and
// returns Home. Wrong answers already given stay in the session log.
func (c *Controller) CancelQuiz() {
	if c.screen == ScreenQuiz && c.topic != nil {
		c.log.Debug("quiz cancelled", "topic_id", c.topic.ID, "index", c.index)
	}
	c.screen = ScreenHome
}

// ViewWrongAnswers switches to the wrong answer review.
func (c *Controller) ViewWrongAnswers() { c.screen = ScreenWrongAnswers }

// ViewRanking switches to the leaderboard.
func (c *Controller) ViewRanking() { c.screen = ScreenRanking }

// GoHome switches to the Home screen. Session data is kept.
func (c *Controller) GoHome() { c.screen = ScreenHome }

// WrongAnswerCountForTopic counts session wrong answers for topicID.
func (c *Controller) WrongAnswerCountForTopic(topicID int) int {
	n := 0
	for _, wa := range c.wrongLog {
		if wa.Question.TopicID == topicID {
			n++
		}
	}
	return n
}

// Catalog returns the catalog the controller reads from.
func (c *Controller) Catalog() Catalog { return c.cat }

func (c *Controller) Screen() Screen { return c.screen }

// CurrentTopic returns the most recently selected topic.
func (c *Controller) CurrentTopic() (catalog.Topic, bool) {
	if c.topic == nil {
		return catalog.Topic{}, false
	}
	return *c.topic, true
}

// Questions returns the active run's question sequence.
func (c *Controller) Questions() []catalog.Question {
	out := make([]catalog.Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = q.Clone()
	}
	return out
}

// CurrentQuestion returns the question awaiting an answer. It reports false
// outside a run or for an empty topic.
func (c *Controller) CurrentQuestion() (catalog.Question, bool) {
	if c.screen != ScreenQuiz || c.index >= len(c.questions) {
		return catalog.Question{}, false
	}
	return c.questions[c.index].Clone(), true
}

func (c *Controller) Index() int { return c.index }

func (c *Controller) Score() int { return c.score }

// RunWrongAnswers returns the wrong answers of the active or last run.
func (c *Controller) RunWrongAnswers() []WrongAnswer {
	return cloneWrong(c.runWrong)
}

// LastResult returns the most recently completed run.
func (c *Controller) LastResult() (QuizResult, bool) {
	if c.lastResult == nil {
		return QuizResult{}, false
	}
	return *c.lastResult, true
}

// WrongAnswers returns the session-wide wrong answer log, oldest first.
func (c *Controller) WrongAnswers() []WrongAnswer {
	return cloneWrong(c.wrongLog)
}

func cloneWrong(in []WrongAnswer) []WrongAnswer {
	out := make([]WrongAnswer, len(in))
	for i, wa := range in {
		wa.Question = wa.Question.Clone()
		out[i] = wa
	}
	return out
}

// Rankings returns the leaderboard, best first.
func (c *Controller) Rankings() []RankingEntry {
	return slices.Clone(c.rankings)
}

func (c *Controller) fail(op string, err error, attrs ...any) error {
	serr := &StateError{Op: op, Screen: c.screen, Err: err}
	c.log.Error("rejected quiz operation", append([]any{"op", op, "screen", c.screen.String(), "err", err}, attrs...)...)
	return serr
}
