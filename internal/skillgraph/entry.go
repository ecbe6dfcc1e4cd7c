package skillgraph

import (
	"fmt"
	"time"

	"github.com/abhisek/skillforge/internal/questionbank"
)

// Level bounds for a skill entry.
const (
	MinLevel = 0
	MaxLevel = 100
)

// Level deltas applied after each answer.
const (
	QuizCorrectDelta          = 5
	QuizIncorrectDelta        = -3
	RemediationCorrectDelta   = 8
	RemediationIncorrectDelta = -2
)

// WeakThreshold is the level below which a concept needs remediation.
const WeakThreshold = 50

// WeaknessType labels why a concept is weak.
type WeaknessType string

const (
	WeaknessSpeed       WeaknessType = "speed"
	WeaknessAccuracy    WeaknessType = "accuracy"
	WeaknessConceptual  WeaknessType = "conceptual"
	WeaknessApplication WeaknessType = "application"
)

// Entry is the mastery level of one concept.
type Entry struct {
	Concept       questionbank.Concept `json:"concept"`
	Level         int                  `json:"level"`
	WeaknessType  WeaknessType         `json:"weaknessType,omitempty"`
	LastPracticed time.Time            `json:"lastPracticed"`
}

// QuizDelta returns the level change for a quiz answer.
func QuizDelta(correct bool) int {
	if correct {
		return QuizCorrectDelta
	}
	return QuizIncorrectDelta
}

// RemediationDelta returns the level change for a remediation answer.
func RemediationDelta(correct bool) int {
	if correct {
		return RemediationCorrectDelta
	}
	return RemediationIncorrectDelta
}

// Label returns a short band name for a level.
func Label(level int) string {
	switch {
	case level >= 80:
		return "Strong"
	case level >= WeakThreshold:
		return "Developing"
	case level > 0:
		return "Weak"
	default:
		return "Not started"
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %d%%", e.Concept, e.Level)
}

func clampLevel(l int) int {
	return min(max(l, MinLevel), MaxLevel)
}
