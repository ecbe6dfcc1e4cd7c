package session

import (
	"time"

	"github.com/abhisek/skillforge/internal/questionbank"
)

// Summary is the persisted outcome of a finished session.
type Summary struct {
	ID              string                  `json:"id"`
	Concept         questionbank.Concept    `json:"concept"`
	TotalQuestions  int                     `json:"totalQuestions"`
	TotalCorrect    int                     `json:"totalCorrect"`
	Accuracy        float64                 `json:"accuracy"`
	Duration        time.Duration           `json:"duration"`
	FinalDifficulty questionbank.Difficulty `json:"finalDifficulty"`
	StartedAt       time.Time               `json:"startedAt"`
	TierCounts      map[string]int          `json:"tierCounts"`
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(s *State) Summary {
	var accuracy float64
	if n := s.Answered(); n > 0 {
		accuracy = float64(s.TotalCorrect()) / float64(n)
	}

	tiers := make(map[string]int)
	for _, a := range s.Attempts {
		tiers[string(a.Difficulty)]++
	}

	return Summary{
		ID:              s.ID,
		Concept:         s.Concept,
		TotalQuestions:  s.Answered(),
		TotalCorrect:    s.TotalCorrect(),
		Accuracy:        accuracy,
		Duration:        s.Elapsed,
		FinalDifficulty: s.Difficulty,
		StartedAt:       s.StartTime,
		TierCounts:      tiers,
	}
}
