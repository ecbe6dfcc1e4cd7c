package history

import (
	"testing"
	"time"

	"github.com/abhisek/skillforge/internal/questionbank"
)

func attempt(c questionbank.Concept, correct bool, secs float64) Attempt {
	return Attempt{QuestionID: "q", Concept: c, Difficulty: questionbank.Easy, Correct: correct, TimeSpent: secs}
}

func TestLog_AppendDoesNotMutate(t *testing.T) {
	base := make(Log, 1, 4)
	base[0] = attempt("A", true, 1)

	a := base.Append(attempt("A", false, 2))
	b := base.Append(attempt("B", true, 3))

	if len(base) != 1 {
		t.Errorf("base length changed to %d", len(base))
	}
	if a[1].Concept != "A" || b[1].Concept != "B" {
		t.Errorf("appends aliased: a=%q b=%q", a[1].Concept, b[1].Concept)
	}
}

func TestLog_Last(t *testing.T) {
	var l Log
	for i := 0; i < 12; i++ {
		l = l.Append(attempt("A", true, float64(i)))
	}

	tests := []struct {
		n, wantLen int
		wantFirst  float64
	}{
		{10, 10, 2},
		{20, 12, 0},
		{1, 1, 11},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := l.Last(tt.n)
		if len(got) != tt.wantLen {
			t.Errorf("Last(%d): got len %d, want %d", tt.n, len(got), tt.wantLen)
			continue
		}
		if tt.wantLen > 0 && got[0].TimeSpent != tt.wantFirst {
			t.Errorf("Last(%d): first TimeSpent = %v, want %v", tt.n, got[0].TimeSpent, tt.wantFirst)
		}
	}
}

func TestLog_Aggregates(t *testing.T) {
	l := Log{attempt("A", true, 8), attempt("B", true, 9), attempt("A", false, 40)}
	if got := l.CorrectCount(); got != 2 {
		t.Errorf("CorrectCount = %d, want 2", got)
	}
	if got := l.TotalTime(); got != 57 {
		t.Errorf("TotalTime = %v, want 57", got)
	}
	if got := len(l.ForConcept("A")); got != 2 {
		t.Errorf("ForConcept(A) len = %d, want 2", got)
	}
	outs := l.Outcomes()
	if len(outs) != 3 || outs[2].Correct || outs[2].TimeSpent != 40 {
		t.Errorf("Outcomes = %+v", outs)
	}
}

func TestNewAttempt(t *testing.T) {
	q, err := questionbank.Default().Get("arr_easy_1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a, err := NewAttempt(q, q.CorrectIndex, 7, Confidence(4), now)
	if err != nil {
		t.Fatalf("NewAttempt: %v", err)
	}
	if !a.Correct || a.Concept != questionbank.ConceptArrays || a.Difficulty != questionbank.Easy {
		t.Errorf("unexpected attempt: %+v", a)
	}
	if !a.ConfidenceAtMost(4) || a.ConfidenceAtMost(3) {
		t.Error("ConfidenceAtMost mismatch")
	}

	if _, err := NewAttempt(q, 0, -1, nil, now); err == nil {
		t.Error("expected error for negative time")
	}
	if _, err := NewAttempt(q, 0, 1, Confidence(6), now); err == nil {
		t.Error("expected error for confidence 6")
	}

	noConf, _ := NewAttempt(q, 0, 1, nil, now)
	if noConf.ConfidenceAtMost(5) {
		t.Error("unreported confidence should not count")
	}
}
