// Package cognitive classifies behavioral patterns in a learner's recent
// quiz attempts and maintains the learner's cognitive profile.
package cognitive

import (
	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
)

// AnalysisWindow is the number of most recent attempts a profiler pass reads.
const AnalysisWindow = 10

// Analysis is the result of one profiler pass.
type Analysis struct {
	Insights []Insight    `json:"insights"`
	Delta    ProfileDelta `json:"delta"`
	Window   history.Log  `json:"window"`
}

// WeakConcepts returns the concepts flagged by per-concept insights.
func (a Analysis) WeakConcepts() []questionbank.Concept {
	var out []questionbank.Concept
	for _, in := range a.Insights {
		if in.Concept != "" {
			out = append(out, in.Concept)
		}
	}
	return out
}

// Analyze runs the default detectors over the last AnalysisWindow attempts.
// The delta carries the window averages plus any pattern scores that fired.
// An empty history yields the zero Analysis.
func Analyze(attempts history.Log) Analysis {
	return AnalyzeWith(DefaultDetectors(), attempts)
}

// AnalyzeWith is Analyze with an explicit detector set.
func AnalyzeWith(detectors []Detector, attempts history.Log) Analysis {
	if len(attempts) == 0 {
		return Analysis{}
	}
	window := attempts.Last(AnalysisWindow)
	insights, patterns := RunDetectors(detectors, window)
	return Analysis{
		Insights: insights,
		Delta:    Averages(window).Merge(patterns),
		Window:   window,
	}
}
