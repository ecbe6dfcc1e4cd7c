package remediation

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/skillgraph"
)

func TestContentFor_AllConcepts(t *testing.T) {
	for _, c := range questionbank.AllConcepts() {
		content, ok := ContentFor(c)
		if !ok {
			t.Errorf("no content for %q", c)
			continue
		}
		if content.Concept != c || content.Lesson == "" || content.Visualization == "" {
			t.Errorf("incomplete content for %q", c)
		}
		if len(content.Problems) != 3 {
			t.Errorf("%q: got %d problems, want 3", c, len(content.Problems))
		}
	}
}

func TestNewDrill_Unknown(t *testing.T) {
	if _, err := NewDrill("Graphs"); !errors.Is(err, ErrNoContent) {
		t.Errorf("got %v, want ErrNoContent", err)
	}
}

func TestDrill_Check(t *testing.T) {
	d, err := NewDrill(questionbank.ConceptLoops)
	if err != nil {
		t.Fatalf("NewDrill: %v", err)
	}

	r, _ := d.Check("exit")
	if r.Correct || r.Delta != skillgraph.RemediationIncorrectDelta {
		t.Errorf("wrong answer: got %+v", r)
	}
	if d.Index != 0 {
		t.Errorf("index = %d after wrong answer, want 0", d.Index)
	}

	r, _ = d.Check("  BREAK ")
	if !r.Correct || r.Delta != skillgraph.RemediationCorrectDelta {
		t.Errorf("correct answer: got %+v", r)
	}
	if d.Index != 1 {
		t.Errorf("index = %d, want 1", d.Index)
	}

	d.Check("continue")
	r, _ = d.Check("Infinite Loop")
	if !r.Completed || !d.Completed {
		t.Error("expected drill to complete after last problem")
	}
	if d.Correct != 3 || d.Incorrect != 1 {
		t.Errorf("correct=%d incorrect=%d, want 3/1", d.Correct, d.Incorrect)
	}

	if _, err := d.Check("anything"); !errors.Is(err, ErrCompleted) {
		t.Errorf("got %v, want ErrCompleted", err)
	}
}

func TestTargets(t *testing.T) {
	now := time.Now()
	g := skillgraph.StarterGraph(now)
	g = skillgraph.ApplyDelta(g, questionbank.ConceptArrays, 60, now)
	g = skillgraph.ApplyDelta(g, questionbank.ConceptLoops, 30, now)
	g = skillgraph.ApplyDelta(g, questionbank.ConceptRecursion, 10, now)
	g = append(g, skillgraph.Entry{Concept: "Graphs", Level: 0})

	got := Targets(g)
	want := []questionbank.Concept{questionbank.ConceptDynamicProgramming, questionbank.ConceptRecursion, questionbank.ConceptLoops}
	if len(got) != len(want) {
		t.Fatalf("got %d targets, want %d", len(got), len(want))
	}
	for i, c := range want {
		if got[i].Concept != c {
			t.Errorf("target %d = %q, want %q", i, got[i].Concept, c)
		}
	}
}
