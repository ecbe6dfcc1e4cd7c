package cognitive

import "github.com/abhisek/skillforge/internal/history"

// Apply returns p with the fields present in d overwritten.
func (p Profile) Apply(d ProfileDelta) Profile {
	if d.AverageSpeed != nil {
		p.AverageSpeed = max(*d.AverageSpeed, 0)
	}
	if d.AverageAccuracy != nil {
		p.AverageAccuracy = clampUnit(*d.AverageAccuracy)
	}
	if d.GuessPattern != nil {
		p.GuessPattern = clampUnit(*d.GuessPattern)
	}
	if d.HesitationScore != nil {
		p.HesitationScore = clampUnit(*d.HesitationScore)
	}
	if d.ImpulsivityIndex != nil {
		p.ImpulsivityIndex = clampUnit(*d.ImpulsivityIndex)
	}
	return p
}

// Averages computes mean time spent and accuracy over attempts. An empty
// log yields a delta with no fields set.
func Averages(attempts history.Log) ProfileDelta {
	if len(attempts) == 0 {
		return ProfileDelta{}
	}
	n := float64(len(attempts))
	return ProfileDelta{
		AverageSpeed:    ptr(attempts.TotalTime() / n),
		AverageAccuracy: ptr(float64(attempts.CorrectCount()) / n),
	}
}

func clampUnit(f float64) float64 {
	return min(max(f, 0), 1)
}
