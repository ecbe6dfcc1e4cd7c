package selector

import "github.com/abhisek/skillforge/internal/questionbank"

// FastResponseThreshold is the time limit, in seconds, under which two
// consecutive correct answers promote the learner one tier.
const FastResponseThreshold = 15.0

// RecentWindowSize is how many trailing outcomes drive an adjustment.
const RecentWindowSize = 2

// Outcome is one entry of the session-local performance window.
type Outcome struct {
	Correct   bool
	TimeSpent float64 // seconds
}

// Adjustment is the single difficulty move decided from the performance window.
type Adjustment int

const (
	NoChange Adjustment = iota
	Promote
	Demote
)

// String returns the adjustment name.
func (a Adjustment) String() string {
	switch a {
	case Promote:
		return "promote"
	case Demote:
		return "demote"
	default:
		return "no-change"
	}
}

// Apply moves d according to the adjustment.
func (a Adjustment) Apply(d questionbank.Difficulty) questionbank.Difficulty {
	switch a {
	case Promote:
		return d.Harder()
	case Demote:
		return d.Easier()
	}
	return d
}

// Decide inspects the last two outcomes of window. Fewer than two
// outcomes never moves the tier.
func Decide(window []Outcome) Adjustment {
	if len(window) < RecentWindowSize {
		return NoChange
	}
	recent := window[len(window)-RecentWindowSize:]

	allFastCorrect := true
	anyIncorrect := false
	for _, o := range recent {
		if !o.Correct {
			anyIncorrect = true
		}
		if !o.Correct || o.TimeSpent >= FastResponseThreshold {
			allFastCorrect = false
		}
	}

	if allFastCorrect {
		return Promote
	} else if anyIncorrect {
		return Demote
	}
	return NoChange
}
