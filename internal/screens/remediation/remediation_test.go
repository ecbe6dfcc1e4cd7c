package remediation

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/router"
	"github.com/abhisek/skillforge/internal/screen/screentest"
	"github.com/abhisek/skillforge/internal/skillgraph"
)

func typeText(s *RemediationScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter(s *RemediationScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestTargetsListWeakConcepts(t *testing.T) {
	s := New(screentest.SignedIn(t))
	if got := len(s.targets.Items); got != len(questionbank.AllConcepts()) {
		t.Errorf("fresh learner should have %d targets, got %d", len(questionbank.AllConcepts()), got)
	}
}

func TestNoTargetsMessage(t *testing.T) {
	deps := screentest.SignedIn(t)
	for _, c := range questionbank.AllConcepts() {
		deps.Learner.SkillGraph = skillgraph.ApplyDelta(deps.Learner.SkillGraph, c, 90, deps.Learner.CreatedAt)
	}
	s := New(deps)
	if !strings.Contains(s.View(100, 30), "No remediation needed") {
		t.Error("expected the nothing to do message")
	}
}

func TestDrillDeltas(t *testing.T) {
	deps := screentest.SignedIn(t)
	s := NewForConcept(deps, questionbank.ConceptArrays)

	typeText(s, "7")
	enter(s)
	if got := deps.Learner.SkillGraph.Level(questionbank.ConceptArrays); got != 0 {
		t.Errorf("wrong answer at level 0 should clamp to 0, got %d", got)
	}
	if s.drill.Index != 0 {
		t.Errorf("wrong answer should stay on the problem, index %d", s.drill.Index)
	}

	s.input.Reset()
	typeText(s, " 0 ")
	enter(s)
	if got := deps.Learner.SkillGraph.Level(questionbank.ConceptArrays); got != 8 {
		t.Errorf("level = %d, want 8", got)
	}
	if s.drill.Index != 1 {
		t.Errorf("correct answer should advance, index %d", s.drill.Index)
	}
}

func TestDrillCompletesAndPops(t *testing.T) {
	deps := screentest.SignedIn(t)
	s := NewForConcept(deps, questionbank.ConceptLoops)

	for _, ans := range []string{"BREAK", "continue", "Infinite Loop"} {
		typeText(s, ans)
		enter(s)
	}
	if !s.drill.Completed {
		t.Fatal("drill should be complete")
	}
	if got := deps.Learner.SkillGraph.Level(questionbank.ConceptLoops); got != 24 {
		t.Errorf("level = %d, want 24", got)
	}

	saved, err := deps.Learners.Get(t.Context(), deps.Learner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := saved.SkillGraph.Level(questionbank.ConceptLoops); got != 24 {
		t.Errorf("persisted level = %d, want 24", got)
	}

	cmd := enter(s)
	if cmd == nil {
		t.Fatal("enter after completion should navigate")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestStatusShowsDrillProgress(t *testing.T) {
	deps := screentest.SignedIn(t)
	if got := New(deps).Status(); got != "" {
		t.Errorf("target list status = %q, want empty", got)
	}

	s := NewForConcept(deps, questionbank.ConceptArrays)
	if got := s.Status(); got != "Drill 1/3" {
		t.Errorf("status = %q, want Drill 1/3", got)
	}
	typeText(s, "0")
	enter(s)
	if got := s.Status(); got != "Drill 2/3" {
		t.Errorf("status = %q, want Drill 2/3", got)
	}
}
