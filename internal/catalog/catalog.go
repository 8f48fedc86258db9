package catalog

import (
	"slices"
)

// Catalog is the read-only set of topics and questions. It is built once
// at startup and never mutated; every accessor hands out copies.
type Catalog struct {
	topics    []Topic
	questions []Question
	topicIdx  map[int]int
}

// New validates the given topics and questions and builds a Catalog.
// Catalog order is the order of the input slices.
func New(topics []Topic, questions []Question) (*Catalog, error) {
	if err := validate(topics, questions); err != nil {
		return nil, err
	}

	c := &Catalog{
		topics:    slices.Clone(topics),
		questions: make([]Question, 0, len(questions)),
		topicIdx:  make(map[int]int, len(topics)),
	}
	for i, t := range c.topics {
		c.topicIdx[t.ID] = i
	}
	for _, q := range questions {
		c.questions = append(c.questions, q.Clone())
	}
	return c, nil
}

// Topics returns all topics in catalog order.
func (c *Catalog) Topics() []Topic {
	return slices.Clone(c.topics)
}

// Questions returns every question in catalog order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, 0, len(c.questions))
	for _, q := range c.questions {
		out = append(out, q.Clone())
	}
	return out
}

// QuestionsForTopic returns the questions whose TopicID equals topicID,
// in catalog order. Unknown ids and topics without questions yield an
// empty slice.
func (c *Catalog) QuestionsForTopic(topicID int) []Question {
	out := []Question{}
	for _, q := range c.questions {
		if q.TopicID == topicID {
			out = append(out, q.Clone())
		}
	}
	return out
}

// Topic looks up a topic by id.
func (c *Catalog) Topic(id int) (Topic, bool) {
	i, ok := c.topicIdx[id]
	if !ok {
		return Topic{}, false
	}
	return c.topics[i], true
}

// TopicName returns the display name for id, or "" if the topic is unknown.
func (c *Catalog) TopicName(id int) string {
	t, _ := c.Topic(id)
	return t.Name
}

// Len returns the number of topics and questions.
func (c *Catalog) Len() (topics, questions int) {
	return len(c.topics), len(c.questions)
}
