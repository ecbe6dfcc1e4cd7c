// Package history holds quiz attempts, the append-only record a learner
// accumulates across sessions.
package history

import (
	"fmt"
	"time"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/selector"
)

// Confidence bounds for self-reported confidence.
const (
	MinConfidence = 1
	MaxConfidence = 5
)

// Attempt is one answered question. Attempts are never mutated once appended.
type Attempt struct {
	QuestionID string                  `json:"questionId"`
	Concept    questionbank.Concept    `json:"concept"`
	Difficulty questionbank.Difficulty `json:"difficulty"`
	Correct    bool                    `json:"correct"`
	TimeSpent  float64                 `json:"timeSpent"`
	Confidence *int                    `json:"confidence,omitempty"`
	Timestamp  time.Time               `json:"timestamp"`
}

// NewAttempt builds an attempt for q answered with choice.
func NewAttempt(q questionbank.Question, choice int, timeSpent float64, confidence *int, now time.Time) (Attempt, error) {
	if timeSpent < 0 {
		return Attempt{}, fmt.Errorf("negative time spent: %v", timeSpent)
	}
	if confidence != nil && (*confidence < MinConfidence || *confidence > MaxConfidence) {
		return Attempt{}, fmt.Errorf("confidence %d out of range [%d, %d]", *confidence, MinConfidence, MaxConfidence)
	}
	a := Attempt{
		QuestionID: q.ID,
		Concept:    q.Concept,
		Difficulty: q.Difficulty,
		Correct:    q.IsCorrect(choice),
		TimeSpent:  timeSpent,
		Timestamp:  now,
	}
	if confidence != nil {
		c := *confidence
		a.Confidence = &c
	}
	return a, nil
}

// Outcome projects the attempt onto a performance window entry.
func (a Attempt) Outcome() selector.Outcome {
	return selector.Outcome{Correct: a.Correct, TimeSpent: a.TimeSpent}
}

// ConfidenceAtMost reports whether a confidence was reported and is <= n.
func (a Attempt) ConfidenceAtMost(n int) bool {
	return a.Confidence != nil && *a.Confidence <= n
}

// Confidence returns a pointer to c, for building attempts inline.
func Confidence(c int) *int {
	return &c
}
