package cognitive

import "github.com/abhisek/skillforge/internal/history"

const (
	// LowConfidence is the highest self-reported confidence treated as a guess.
	LowConfidence     = 2
	GuessingMinCount  = 2
	GuessPatternScore = 0.6
)

// GuessingDetector flags correct answers the learner was unsure about.
// Attempts without a reported confidence are ignored.
type GuessingDetector struct{}

func (d *GuessingDetector) Name() string { return "guessing" }

func (d *GuessingDetector) Detect(window history.Log) ([]Insight, ProfileDelta) {
	n := count(window, func(a history.Attempt) bool {
		return a.Correct && a.ConfidenceAtMost(LowConfidence)
	})
	if n < GuessingMinCount {
		return nil, ProfileDelta{}
	}
	return []Insight{{
		Type:           InsightAccuracy,
		Severity:       SeverityMedium,
		Message:        "Potential Guessing Pattern",
		Recommendation: "You marked low confidence but got answers correct. This might indicate lucky guesses rather than understanding.",
	}}, ProfileDelta{GuessPattern: ptr(GuessPatternScore)}
}
