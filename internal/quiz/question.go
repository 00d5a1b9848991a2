// Package quiz defines the question descriptor handed to the maze engine and
// the question banks a host draws descriptors from.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// OptionCount is the number of answer rooms, and therefore options, per question.
const OptionCount = 4

// ErrInvalidQuestion is wrapped by every validation failure.
var ErrInvalidQuestion = errors.New("quiz: invalid question")

// Question is an immutable multiple-choice descriptor.
// Text is display-only; the engine uses Options and Correct.
type Question struct {
	Text    string
	Options [OptionCount]string
	Correct int
}

// New builds a Question from a variable-length option list and validates it.
func New(text string, options []string, correct int) (Question, error) {
	if len(options) != OptionCount {
		return Question{}, fmt.Errorf("%w: need %d options, got %d", ErrInvalidQuestion, OptionCount, len(options))
	}
	q := Question{Text: text, Correct: correct}
	copy(q.Options[:], options)
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks the invariants the maze relies on: the correct index
// names one of the four options and no option label is blank.
func (q Question) Validate() error {
	if q.Correct < 0 || q.Correct >= OptionCount {
		return fmt.Errorf("%w: correct index %d out of range [0,%d]", ErrInvalidQuestion, q.Correct, OptionCount-1)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidQuestion, i)
		}
	}
	return nil
}

// IsCorrect reports whether option i is the right answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.Correct
}

// CorrectLabel returns the label of the right answer.
func (q Question) CorrectLabel() string {
	return q.Options[q.Correct]
}
