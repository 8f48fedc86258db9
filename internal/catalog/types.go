package catalog

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Topic is a quiz topic shown on the home screen.
type Topic struct {
	ID    int    `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Image string `yaml:"image,omitempty" json:"image,omitempty"`
}

// Question is a single four-option question belonging to a topic.
type Question struct {
	ID          int      `yaml:"id" json:"id"`
	TopicID     int      `yaml:"topic_id" json:"topic_id"`
	Text        string   `yaml:"text" json:"text"`
	Options     []string `yaml:"options" json:"options"`
	AnswerIndex int      `yaml:"answer_index" json:"answer_index"`
}

// IsCorrect reports whether option i is the right answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.AnswerIndex
}

// CorrectOption returns the text of the right answer.
func (q Question) CorrectOption() string {
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.AnswerIndex]
}

// HasOption reports whether i indexes one of the question's options.
func (q Question) HasOption(i int) bool {
	return i >= 0 && i < len(q.Options)
}

// Clone returns a copy of q that shares no memory with it.
func (q Question) Clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}
