package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the root of every precondition failure. These signal a
// caller bug, not a recoverable condition.
var ErrInvalidState = errors.New("invalid quiz state")

var (
	ErrNoTopicSelected  = fmt.Errorf("%w: no topic selected", ErrInvalidState)
	ErrNotInQuiz        = fmt.Errorf("%w: not in a quiz", ErrInvalidState)
	ErrOptionOutOfRange = fmt.Errorf("%w: option index out of range", ErrInvalidState)
	ErrUnknownTopic     = fmt.Errorf("%w: topic not in catalog", ErrInvalidState)
	ErrNoQuestions      = fmt.Errorf("%w: topic has no questions", ErrInvalidState)
)

// StateError describes a rejected controller operation.
type StateError struct {
	Op     string
	Screen Screen
	Err    error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("quiz: %s on %s screen: %v", e.Op, e.Screen, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }
