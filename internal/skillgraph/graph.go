// Package skillgraph tracks per-concept mastery levels for a learner.
package skillgraph

import (
	"slices"
	"time"

	"github.com/abhisek/skillforge/internal/questionbank"
)

// Graph is an ordered list of concept entries. Operations return new graphs
// and never modify their input.
type Graph []Entry

// StarterGraph returns the built-in concepts at level 0.
func StarterGraph(now time.Time) Graph {
	concepts := questionbank.AllConcepts()
	g := make(Graph, len(concepts))
	for i, c := range concepts {
		g[i] = Entry{Concept: c, Level: MinLevel, LastPracticed: now}
	}
	return g
}

// ApplyDelta adds delta to the level of concept, clamped to [0, 100], and
// stamps LastPracticed. An unknown concept returns an unchanged copy.
func ApplyDelta(g Graph, concept questionbank.Concept, delta int, now time.Time) Graph {
	out := slices.Clone(g)
	for i := range out {
		if out[i].Concept == concept {
			out[i].Level = clampLevel(out[i].Level + delta)
			out[i].LastPracticed = now
		}
	}
	return out
}

// TagWeakness sets the weakness type of concept. Unknown concepts are ignored.
func TagWeakness(g Graph, concept questionbank.Concept, w WeaknessType) Graph {
	out := slices.Clone(g)
	for i := range out {
		if out[i].Concept == concept {
			out[i].WeaknessType = w
		}
	}
	return out
}

// Get returns the entry for concept.
func (g Graph) Get(concept questionbank.Concept) (Entry, bool) {
	for _, e := range g {
		if e.Concept == concept {
			return e, true
		}
	}
	return Entry{}, false
}

// Level returns the level of concept, or 0 if it is not tracked.
func (g Graph) Level(concept questionbank.Concept) int {
	e, _ := g.Get(concept)
	return e.Level
}

// Weak returns entries below threshold, lowest level first. Ties keep graph order.
func (g Graph) Weak(threshold int) []Entry {
	var out []Entry
	for _, e := range g {
		if e.Level < threshold {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return a.Level - b.Level
	})
	return out
}

// Weakest returns the entry with the lowest level. The first one wins ties.
func (g Graph) Weakest() (Entry, bool) {
	if len(g) == 0 {
		return Entry{}, false
	}
	w := g[0]
	for _, e := range g[1:] {
		if e.Level < w.Level {
			w = e
		}
	}
	return w, true
}

// Average returns the mean level across entries.
func (g Graph) Average() float64 {
	if len(g) == 0 {
		return 0
	}
	sum := 0
	for _, e := range g {
		sum += e.Level
	}
	return float64(sum) / float64(len(g))
}
