// Package remediation serves micro-lessons and short drills for a
// learner's weakest concepts.
package remediation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/skillgraph"
)

var (
	ErrNoContent = errors.New("no remediation content for concept")
	ErrCompleted = errors.New("drill already completed")
)

// Targets returns the weak entries of g that have remediation content,
// lowest level first.
func Targets(g skillgraph.Graph) []skillgraph.Entry {
	var out []skillgraph.Entry
	for _, e := range g.Weak(skillgraph.WeakThreshold) {
		if _, ok := catalog[e.Concept]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Drill walks a learner through the problems of one concept. A wrong
// answer keeps the learner on the same problem.
type Drill struct {
	Content   Content
	Index     int
	Correct   int
	Incorrect int
	Completed bool
}

// Result is the outcome of one checked answer.
type Result struct {
	Correct   bool
	Delta     int
	Expected  string
	Completed bool
}

// NewDrill starts a drill for concept.
func NewDrill(c questionbank.Concept) (*Drill, error) {
	content, ok := ContentFor(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoContent, c)
	}
	return &Drill{Content: content}, nil
}

// Current returns the problem awaiting an answer.
func (d *Drill) Current() Problem {
	return d.Content.Problems[d.Index]
}

// Check compares answer to the current problem, ignoring case and
// surrounding whitespace, and advances on a correct answer.
func (d *Drill) Check(answer string) (Result, error) {
	if d.Completed {
		return Result{}, ErrCompleted
	}
	p := d.Current()
	correct := strings.EqualFold(strings.TrimSpace(answer), p.Answer)

	r := Result{
		Correct:  correct,
		Delta:    skillgraph.RemediationDelta(correct),
		Expected: p.Answer,
	}
	if !correct {
		d.Incorrect++
		return r, nil
	}

	d.Correct++
	if d.Index == len(d.Content.Problems)-1 {
		d.Completed = true
	} else {
		d.Index++
	}
	r.Completed = d.Completed
	return r, nil
}

// Progress returns the 1-based problem number and the total.
func (d *Drill) Progress() (int, int) {
	return d.Index + 1, len(d.Content.Problems)
}
