package selector

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/skillforge/internal/questionbank"
)

func newTestSelector(t *testing.T, bank *questionbank.Bank) *Selector {
	t.Helper()
	return New(bank, rand.New(rand.NewPCG(1, 2)))
}

func mustBank(t *testing.T, qs ...questionbank.Question) *questionbank.Bank {
	t.Helper()
	b, err := questionbank.New(qs)
	if err != nil {
		t.Fatalf("questionbank.New: %v", err)
	}
	return b
}

func q(id string, c questionbank.Concept, d questionbank.Difficulty) questionbank.Question {
	return questionbank.Question{
		ID:         id,
		Concept:    c,
		Difficulty: d,
		Prompt:     "prompt " + id,
		Options:    []string{"a", "b"},
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		window []Outcome
		want   Adjustment
	}{
		{"empty", nil, NoChange},
		{"single", []Outcome{{Correct: true, TimeSpent: 3}}, NoChange},
		{"two fast correct", []Outcome{{true, 5}, {true, 14.9}}, Promote},
		{"one slow correct", []Outcome{{true, 5}, {true, 15}}, NoChange},
		{"both slow correct", []Outcome{{true, 40}, {true, 30}}, NoChange},
		{"last incorrect", []Outcome{{true, 5}, {false, 5}}, Demote},
		{"first incorrect", []Outcome{{false, 5}, {true, 5}}, Demote},
		{"only last two count", []Outcome{{false, 5}, {false, 5}, {true, 2}, {true, 2}}, Promote},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.window); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSelectNext_Promotion(t *testing.T) {
	s := newTestSelector(t, questionbank.Default())
	window := []Outcome{{true, 8}, {true, 9}}

	for i := 0; i < 20; i++ {
		got, ok := s.SelectNext(questionbank.ConceptArrays, questionbank.Medium, window)
		if !ok {
			t.Fatal("expected a question")
		}
		if got.Difficulty != questionbank.Hard {
			t.Fatalf("got difficulty %s, want hard", got.Difficulty)
		}
	}
}

func TestSelectNext_Demotion(t *testing.T) {
	s := newTestSelector(t, questionbank.Default())
	window := []Outcome{{true, 8}, {false, 9}}

	for i := 0; i < 20; i++ {
		got, ok := s.SelectNext(questionbank.ConceptRecursion, questionbank.Hard, window)
		if !ok {
			t.Fatal("expected a question")
		}
		if got.Difficulty != questionbank.Medium {
			t.Fatalf("got difficulty %s, want medium", got.Difficulty)
		}
	}
}

func TestSelectNext_FloorAndCeiling(t *testing.T) {
	s := newTestSelector(t, questionbank.Default())

	got, ok := s.SelectNext(questionbank.ConceptDynamicProgramming, questionbank.Easy, []Outcome{{false, 3}, {false, 3}})
	if !ok || got.Difficulty != questionbank.Easy {
		t.Errorf("demote at easy: got %s (ok=%v), want easy", got.Difficulty, ok)
	}

	got, ok = s.SelectNext(questionbank.ConceptDynamicProgramming, questionbank.Hard, []Outcome{{true, 3}, {true, 3}})
	if !ok || got.Difficulty != questionbank.Hard {
		t.Errorf("promote at hard: got %s (ok=%v), want hard", got.Difficulty, ok)
	}
}

func TestSelectNext_NoChange(t *testing.T) {
	s := newTestSelector(t, questionbank.Default())
	got, ok := s.SelectNext(questionbank.ConceptArrays, questionbank.Medium, []Outcome{{true, 20}, {true, 25}})
	if !ok || got.Difficulty != questionbank.Medium {
		t.Errorf("got %s (ok=%v), want medium", got.Difficulty, ok)
	}
}

func TestSelectNext_FallbackToConcept(t *testing.T) {
	// Loops has no hard questions in the seed bank.
	s := newTestSelector(t, questionbank.Default())
	got, ok := s.SelectNext(questionbank.ConceptLoops, questionbank.Medium, []Outcome{{true, 1}, {true, 1}})
	if !ok {
		t.Fatal("expected fallback question")
	}
	if got.Concept != questionbank.ConceptLoops {
		t.Errorf("got concept %q, want Loops", got.Concept)
	}
}

func TestSelectNext_EasyOnlyConceptAskedForHard(t *testing.T) {
	bank := mustBank(t,
		q("solo_easy", "Solo", questionbank.Easy),
		q("other_hard", "Other", questionbank.Hard),
	)
	s := newTestSelector(t, bank)

	tests := []struct {
		name    string
		current questionbank.Difficulty
		window  []Outcome
	}{
		{"already hard", questionbank.Hard, nil},
		{"promoted to hard", questionbank.Medium, []Outcome{{true, 3}, {true, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.SelectNext("Solo", tt.current, tt.window)
			if !ok {
				t.Fatal("got Absent, want the easy question")
			}
			if got.ID != "solo_easy" {
				t.Errorf("got %q, want solo_easy", got.ID)
			}
		})
	}
}

func TestSelectNext_UnknownConcept(t *testing.T) {
	s := newTestSelector(t, questionbank.Default())
	if _, ok := s.SelectNext("Graphs", questionbank.Easy, nil); ok {
		t.Error("expected Absent for unknown concept")
	}
}

func TestSelectNext_UniformOverPool(t *testing.T) {
	bank := mustBank(t,
		q("a", "C", questionbank.Easy),
		q("b", "C", questionbank.Easy),
		q("c", "C", questionbank.Easy),
	)
	s := newTestSelector(t, bank)

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		got, _ := s.SelectNext("C", questionbank.Easy, nil)
		seen[got.ID]++
	}
	for _, id := range []string{"a", "b", "c"} {
		if seen[id] == 0 {
			t.Errorf("question %s never selected", id)
		}
	}
}

func TestSelectNext_Deterministic(t *testing.T) {
	a := New(questionbank.Default(), rand.New(rand.NewPCG(7, 7)))
	b := New(questionbank.Default(), rand.New(rand.NewPCG(7, 7)))
	for i := 0; i < 10; i++ {
		qa, _ := a.SelectNext(questionbank.ConceptArrays, questionbank.Easy, nil)
		qb, _ := b.SelectNext(questionbank.ConceptArrays, questionbank.Easy, nil)
		if qa.ID != qb.ID {
			t.Fatalf("draw %d: %s != %s", i, qa.ID, qb.ID)
		}
	}
}

func TestFirstQuestion(t *testing.T) {
	s := newTestSelector(t, questionbank.Default())
	got, ok := s.FirstQuestion(questionbank.ConceptRecursion)
	if !ok || got.ID != "rec_easy_1" {
		t.Errorf("got %q (ok=%v), want rec_easy_1", got.ID, ok)
	}

	bank := mustBank(t, q("m", "OnlyMedium", questionbank.Medium))
	if _, ok := newTestSelector(t, bank).FirstQuestion("OnlyMedium"); ok {
		t.Error("expected Absent without easy questions")
	}
}
