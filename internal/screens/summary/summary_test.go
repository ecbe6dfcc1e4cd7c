package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/cognitive"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen/screentest"
	"github.com/abhisek/skillforge/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		ID:              "s-1",
		Concept:         questionbank.ConceptLoops,
		TotalQuestions:  10,
		TotalCorrect:    6,
		Accuracy:        0.6,
		Duration:        4*time.Minute + 5*time.Second,
		FinalDifficulty: questionbank.Medium,
		TierCounts:      map[string]int{"easy": 6, "medium": 4},
	}
}

func testAnalysis() cognitive.Analysis {
	return cognitive.Analysis{Insights: []cognitive.Insight{{
		Type:           cognitive.InsightSpeed,
		Severity:       cognitive.SeverityHigh,
		Message:        "Impulsive Response Pattern Detected",
		Recommendation: "Slow down.",
	}}}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(screentest.SignedIn(t), testSummary(), testAnalysis())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(screentest.SignedIn(t), testSummary(), testAnalysis())
	view := s.View(100, 30)
	for _, want := range []string{"Accuracy: 60%", "4:05", "Impulsive Response Pattern Detected", "easy 6"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NoInsights(t *testing.T) {
	s := New(screentest.SignedIn(t), testSummary(), cognitive.Analysis{})
	if !strings.Contains(s.View(100, 30), "No problem patterns") {
		t.Error("expected the all clear message")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(screentest.SignedIn(t), testSummary(), testAnalysis())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSummaryScreen_RemediateWhenWeak(t *testing.T) {
	// A fresh learner is level 0 everywhere, so every concept is a target.
	s := New(screentest.SignedIn(t), testSummary(), testAnalysis())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected remediation navigation")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Remediation" {
		t.Errorf("next screen = %q", msg.Screen.Title())
	}
}
