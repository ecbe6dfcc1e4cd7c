// Package session runs a single adaptive quiz over one concept.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/selector"
)

// Start begins a quiz on concept at the easy tier with an empty
// performance window.
func Start(sel *selector.Selector, concept questionbank.Concept, now time.Time) (*State, error) {
	q, ok := sel.FirstQuestion(concept)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoQuestions, concept)
	}
	return &State{
		ID:                uuid.New().String(),
		Concept:           concept,
		Current:           q,
		Difficulty:        q.Difficulty,
		Phase:             PhaseActive,
		StartTime:         now,
		QuestionStartTime: now,
		selector:          sel,
	}, nil
}

// Answer grades choice against the current question, appends the outcome
// to the performance window and moves to the feedback phase. confidence
// may be nil when the learner did not report one.
func (s *State) Answer(choice int, confidence *int, timeSpent float64, now time.Time) (history.Attempt, error) {
	if s.Phase != PhaseActive {
		return history.Attempt{}, ErrNotActive
	}
	a, err := history.NewAttempt(s.Current, choice, timeSpent, confidence, now)
	if err != nil {
		return history.Attempt{}, fmt.Errorf("record answer: %w", err)
	}
	s.Attempts = s.Attempts.Append(a)
	s.Window = append(s.Window, a.Outcome())
	s.Phase = PhaseFeedback
	return a, nil
}

// TimeOnQuestion returns whole seconds since the current question appeared.
func (s *State) TimeOnQuestion(now time.Time) float64 {
	return float64(int(now.Sub(s.QuestionStartTime).Seconds()))
}

// Next serves the following question. It returns true when the session is
// done, either because BatchSize answers were given or no question exists.
func (s *State) Next(now time.Time) bool {
	if s.Phase == PhaseDone {
		return true
	}
	if s.Answered() >= BatchSize {
		s.Phase = PhaseDone
		return true
	}

	adj := selector.Decide(s.Window)
	q, ok := s.selector.SelectNext(s.Concept, s.Difficulty, s.Window)
	if !ok {
		s.Phase = PhaseDone
		return true
	}

	s.Current = q
	s.Difficulty = q.Difficulty
	s.LastAdjustment = adj
	s.QuestionStartTime = now
	s.Phase = PhaseActive
	return false
}

// Tick advances the elapsed timer while the session is running.
func (s *State) Tick(d time.Duration) {
	if s.Phase == PhaseDone {
		return
	}
	s.Elapsed += d
}

// Finish ends the session early.
func (s *State) Finish() {
	s.Phase = PhaseDone
}
