package catalog

import (
	"fmt"
	"strings"
)

// Validate runs the structural checks New performs, without building a catalog.
func Validate(topics []Topic, questions []Question) error {
	return validate(topics, questions)
}

// validate collects every structural problem into a single error.
func validate(topics []Topic, questions []Question) error {
	var errs []string

	topicIDs := make(map[int]bool, len(topics))
	for _, t := range topics {
		if topicIDs[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %d", t.ID))
		}
		topicIDs[t.ID] = true
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Sprintf("topic %d has an empty name", t.ID))
		}
	}

	questionIDs := make(map[int]bool, len(questions))
	for _, q := range questions {
		prefix := fmt.Sprintf("question %d", q.ID)
		if questionIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		questionIDs[q.ID] = true

		if !topicIDs[q.TopicID] {
			errs = append(errs, fmt.Sprintf("%s references nonexistent topic %d", prefix, q.TopicID))
		}
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("%s has empty text", prefix))
		}
		if len(q.Options) != OptionCount {
			errs = append(errs, fmt.Sprintf("%s: expected %d options, got %d", prefix, OptionCount, len(q.Options)))
		}
		if !q.HasOption(q.AnswerIndex) {
			errs = append(errs, fmt.Sprintf("%s: answer index %d out of range [0, %d)", prefix, q.AnswerIndex, len(q.Options)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
