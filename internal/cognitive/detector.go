package cognitive

import "github.com/abhisek/skillforge/internal/history"

// Detector is a rule-based pattern detector evaluated over an analysis
// window. A detector that does not fire returns no insights and an empty
// delta.
type Detector interface {
	Name() string
	Detect(window history.Log) ([]Insight, ProfileDelta)
}

// DefaultDetectors returns the detectors in insight display order.
func DefaultDetectors() []Detector {
	return []Detector{
		&ImpulsivityDetector{},
		&HesitationDetector{},
		&GuessingDetector{},
		&RepeatedMistakesDetector{},
	}
}

// RunDetectors evaluates every detector independently and concatenates
// their insights. Deltas are merged in detector order.
func RunDetectors(detectors []Detector, window history.Log) ([]Insight, ProfileDelta) {
	var (
		insights []Insight
		delta    ProfileDelta
	)
	for _, d := range detectors {
		found, dd := d.Detect(window)
		for i := range found {
			found[i].Detector = d.Name()
		}
		insights = append(insights, found...)
		delta = delta.Merge(dd)
	}
	return insights, delta
}

func count(window history.Log, pred func(history.Attempt) bool) int {
	n := 0
	for _, a := range window {
		if pred(a) {
			n++
		}
	}
	return n
}
