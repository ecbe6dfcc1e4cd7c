package cognitive

import "github.com/abhisek/skillforge/internal/questionbank"

// InsightType names the dimension a detected pattern affects.
type InsightType string

const (
	InsightSpeed       InsightType = "speed"
	InsightAccuracy    InsightType = "accuracy"
	InsightConceptual  InsightType = "conceptual"
	InsightApplication InsightType = "application"
)

// Severity ranks how strongly a pattern should be acted on.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Insight is a detected behavioral pattern ready for display.
type Insight struct {
	Type           InsightType          `json:"type"`
	Severity       Severity             `json:"severity"`
	Message        string               `json:"message"`
	Recommendation string               `json:"recommendation"`
	Concept        questionbank.Concept `json:"concept,omitempty"` // set for per-concept insights
	Detector       string               `json:"detector"`
}

// Profile is a learner's aggregate cognitive profile. Every field except
// AverageSpeed lies in [0, 1].
type Profile struct {
	AverageSpeed     float64 `json:"averageSpeed"`
	AverageAccuracy  float64 `json:"averageAccuracy"`
	GuessPattern     float64 `json:"guessPattern"`
	HesitationScore  float64 `json:"hesitationScore"`
	ImpulsivityIndex float64 `json:"impulsivityIndex"`
}

// ProfileDelta is a partial profile update. Nil fields are left untouched.
type ProfileDelta struct {
	AverageSpeed     *float64 `json:"averageSpeed,omitempty"`
	AverageAccuracy  *float64 `json:"averageAccuracy,omitempty"`
	GuessPattern     *float64 `json:"guessPattern,omitempty"`
	HesitationScore  *float64 `json:"hesitationScore,omitempty"`
	ImpulsivityIndex *float64 `json:"impulsivityIndex,omitempty"`
}

// Empty reports whether the delta sets no field.
func (d ProfileDelta) Empty() bool {
	return d.AverageSpeed == nil && d.AverageAccuracy == nil && d.GuessPattern == nil &&
		d.HesitationScore == nil && d.ImpulsivityIndex == nil
}

// Merge returns d with every field set in o overriding d's.
func (d ProfileDelta) Merge(o ProfileDelta) ProfileDelta {
	if o.AverageSpeed != nil {
		d.AverageSpeed = o.AverageSpeed
	}
	if o.AverageAccuracy != nil {
		d.AverageAccuracy = o.AverageAccuracy
	}
	if o.GuessPattern != nil {
		d.GuessPattern = o.GuessPattern
	}
	if o.HesitationScore != nil {
		d.HesitationScore = o.HesitationScore
	}
	if o.ImpulsivityIndex != nil {
		d.ImpulsivityIndex = o.ImpulsivityIndex
	}
	return d
}

func ptr(f float64) *float64 { return &f }
