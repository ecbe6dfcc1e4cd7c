package cognitive

import (
	"fmt"

	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
)

// RepeatedMistakesMinCount is how many wrong answers in one concept mark a
// conceptual gap.
const RepeatedMistakesMinCount = 2

// RepeatedMistakesDetector emits one insight per concept with repeated
// wrong answers, in the order concepts first appear in the window.
// It never touches the profile.
type RepeatedMistakesDetector struct{}

func (d *RepeatedMistakesDetector) Name() string { return "repeated-mistakes" }

func (d *RepeatedMistakesDetector) Detect(window history.Log) ([]Insight, ProfileDelta) {
	var order []questionbank.Concept
	errs := make(map[questionbank.Concept]int)
	for _, a := range window {
		if a.Correct {
			continue
		}
		if _, ok := errs[a.Concept]; !ok {
			order = append(order, a.Concept)
		}
		errs[a.Concept]++
	}

	var insights []Insight
	for _, c := range order {
		n := errs[c]
		if n < RepeatedMistakesMinCount {
			continue
		}
		insights = append(insights, Insight{
			Type:           InsightConceptual,
			Severity:       SeverityHigh,
			Message:        fmt.Sprintf("Repeated Mistakes in %s", c),
			Recommendation: fmt.Sprintf("You've made %d mistakes in %s. This indicates a conceptual gap. Focus on fundamentals.", n, c),
			Concept:        c,
		})
	}
	return insights, ProfileDelta{}
}
