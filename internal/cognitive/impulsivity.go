package cognitive

import "github.com/abhisek/skillforge/internal/history"

const (
	// ImpulsiveThresholdSecs is the response time (exclusive) under which a
	// wrong answer counts as impulsive.
	ImpulsiveThresholdSecs = 10.0
	// ImpulsiveMinCount is how many impulsive answers trigger the insight.
	ImpulsiveMinCount = 3
	// ImpulsivityScore is written to the profile when the pattern fires.
	ImpulsivityScore = 0.8
)

// ImpulsivityDetector flags fast wrong answers.
type ImpulsivityDetector struct{}

func (d *ImpulsivityDetector) Name() string { return "impulsivity" }

func (d *ImpulsivityDetector) Detect(window history.Log) ([]Insight, ProfileDelta) {
	n := count(window, func(a history.Attempt) bool {
		return !a.Correct && a.TimeSpent < ImpulsiveThresholdSecs
	})
	if n < ImpulsiveMinCount {
		return nil, ProfileDelta{}
	}
	return []Insight{{
		Type:           InsightSpeed,
		Severity:       SeverityHigh,
		Message:        "Impulsive Response Pattern Detected",
		Recommendation: "You're answering quickly but incorrectly. Take more time to read and analyze questions carefully.",
	}}, ProfileDelta{ImpulsivityIndex: ptr(ImpulsivityScore)}
}
