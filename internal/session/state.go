package session

import (
	"errors"
	"time"

	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/selector"
)

// BatchSize is the number of questions in one quiz session. A profiler
// pass runs after every batch.
const BatchSize = 10

var (
	// ErrNoQuestions is returned by Start when the concept has no easy question.
	ErrNoQuestions = errors.New("no questions for concept")

	// ErrNotActive is returned when answering outside the active phase.
	ErrNotActive = errors.New("session is not awaiting an answer")
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // Awaiting an answer
	PhaseFeedback              // Showing answer feedback
	PhaseDone                  // Batch finished or bank exhausted
)

// State tracks the runtime state of one quiz session. The performance
// window lives here and starts empty on every session.
type State struct {
	// ID is the UUID for this session.
	ID string

	Concept questionbank.Concept

	// Current is the question being displayed.
	Current questionbank.Question

	// Difficulty is the tier of Current.
	Difficulty questionbank.Difficulty

	// Window holds (correct, timeSpent) for every answer this session.
	Window []selector.Outcome

	// Attempts are this session's attempts in answer order.
	Attempts history.Log

	// LastAdjustment is the tier move that produced Current.
	LastAdjustment selector.Adjustment

	Phase Phase

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed is advanced by the host's once-per-second tick.
	Elapsed time.Duration

	// QuestionStartTime tracks when Current was first displayed.
	QuestionStartTime time.Time

	selector *selector.Selector
}

// TotalCorrect returns the number of correct answers so far.
func (s *State) TotalCorrect() int {
	return s.Attempts.CorrectCount()
}

// Answered returns the number of answered questions.
func (s *State) Answered() int {
	return len(s.Attempts)
}

// LastAttempt returns the most recent attempt.
func (s *State) LastAttempt() (history.Attempt, bool) {
	if len(s.Attempts) == 0 {
		return history.Attempt{}, false
	}
	return s.Attempts[len(s.Attempts)-1], true
}
