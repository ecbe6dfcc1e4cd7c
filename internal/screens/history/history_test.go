package history

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/screen/screentest"
	"github.com/abhisek/skillforge/internal/session"
)

func TestEmptyHistory(t *testing.T) {
	s := New(screentest.SignedIn(t))
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading state before Init completes")
	}
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 30), "No sessions yet") {
		t.Error("expected empty state")
	}
}

func TestListsSessionsNewestFirst(t *testing.T) {
	deps := screentest.SignedIn(t)
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, c := range []questionbank.Concept{questionbank.ConceptArrays, questionbank.ConceptRecursion} {
		sum := session.Summary{
			ID:              string(c),
			Concept:         c,
			TotalQuestions:  10,
			TotalCorrect:    7,
			Accuracy:        0.7,
			Duration:        90 * time.Second,
			FinalDifficulty: questionbank.Hard,
			StartedAt:       start.Add(time.Duration(i) * time.Hour),
			TierCounts:      map[string]int{"easy": 3, "medium": 4, "hard": 3},
		}
		if _, err := deps.Learners.FinishSession(t.Context(), deps.Learner, sum); err != nil {
			t.Fatal(err)
		}
	}

	s := New(deps)
	s.Update(s.Init()())
	if len(s.sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(s.sessions))
	}
	if s.sessions[0].Concept != questionbank.ConceptRecursion {
		t.Errorf("newest first: got %q", s.sessions[0].Concept)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(120, 30)
	if !strings.Contains(view, "7/10 correct") || !strings.Contains(view, "medium 4") {
		t.Errorf("view missing details:\n%s", view)
	}
}
