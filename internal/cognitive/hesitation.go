package cognitive

import "github.com/abhisek/skillforge/internal/history"

const (
	// HesitantThresholdSecs is the response time (exclusive) above which a
	// correct answer counts as hesitant.
	HesitantThresholdSecs = 30.0
	HesitantMinCount      = 3
	HesitationScore       = 0.7
)

// HesitationDetector flags correct answers that took too long.
type HesitationDetector struct{}

func (d *HesitationDetector) Name() string { return "hesitation" }

func (d *HesitationDetector) Detect(window history.Log) ([]Insight, ProfileDelta) {
	n := count(window, func(a history.Attempt) bool {
		return a.Correct && a.TimeSpent > HesitantThresholdSecs
	})
	if n < HesitantMinCount {
		return nil, ProfileDelta{}
	}
	return []Insight{{
		Type:           InsightConceptual,
		Severity:       SeverityMedium,
		Message:        "Conceptual Hesitation Detected",
		Recommendation: "You're getting answers correct but taking too long. This suggests unclear understanding. Review fundamentals.",
	}}, ProfileDelta{HesitationScore: ptr(HesitationScore)}
}
