package learner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/skillforge/internal/cognitive"
	"github.com/abhisek/skillforge/internal/session"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/abhisek/skillforge/internal/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("learner not found")
)

// Service performs read-modify-write cycles of learner records against
// the store.
type Service struct {
	records    store.RecordRepo
	events     store.EventRepo
	logger     *slog.Logger
	bcryptCost int
	now        func() time.Time
}

// NewService creates a learner service. A nil logger discards output.
func NewService(records store.RecordRepo, events store.EventRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		records:    records,
		events:     events,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// SetBcryptCost overrides the password hashing cost. Tests lower it to
// bcrypt.MinCost.
func (s *Service) SetBcryptCost(cost int) {
	s.bcryptCost = cost
}

// Signup creates and persists a new learner.
func (s *Service) Signup(ctx context.Context, data SignupData) (*Learner, error) {
	var existing string
	err := s.records.Load(ctx, store.EmailKey(data.Email), &existing)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	l, err := New(data, s.bcryptCost, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, l); err != nil {
		return nil, err
	}
	if err := s.records.Save(ctx, store.EmailKey(l.Email), l.ID); err != nil {
		// Without the index the record is unreachable by login.
		if derr := s.records.Delete(ctx, store.UserKey(l.ID)); derr != nil {
			s.logger.Error("orphaned learner record", "learner", l.ID, "error", derr)
		}
		return nil, fmt.Errorf("index email: %w", err)
	}

	s.logger.Info("learner signed up", "learner", l.ID)
	return l, nil
}

// Login returns the learner matching email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*Learner, error) {
	var id string
	if err := s.records.Load(ctx, store.EmailKey(email), &id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	l, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !l.CheckPassword(password) {
		s.logger.Warn("login failed", "learner", l.ID)
		return nil, ErrInvalidCredentials
	}
	return l, nil
}

// Get loads a learner by ID.
func (s *Service) Get(ctx context.Context, id string) (*Learner, error) {
	var l Learner
	if err := s.records.Load(ctx, store.UserKey(id), &l); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("load learner: %w", err)
	}
	return &l, nil
}

// Save persists l.
func (s *Service) Save(ctx context.Context, l *Learner) error {
	if err := s.records.Save(ctx, store.UserKey(l.ID), l); err != nil {
		return fmt.Errorf("save learner: %w", err)
	}
	return nil
}

// Delete removes a learner, the email index entry and its events.
func (s *Service) Delete(ctx context.Context, id string) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, store.EmailKey(l.Email)); err != nil {
		return err
	}
	if err := s.records.Delete(ctx, store.UserKey(id)); err != nil {
		return err
	}
	if err := s.events.DeleteLearner(ctx, id); err != nil {
		return err
	}
	s.logger.Info("learner deleted", "learner", id)
	return nil
}

// Recent returns up to n learners, most recently active first.
func (s *Service) Recent(ctx context.Context, n int) ([]*Learner, error) {
	keys, err := s.records.Keys(ctx, store.UserKeyPrefix, n)
	if err != nil {
		return nil, err
	}
	out := make([]*Learner, 0, len(keys))
	for _, k := range keys {
		l, err := s.Get(ctx, strings.TrimPrefix(k, store.UserKeyPrefix))
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Reset clears a learner's progress, keeping the account.
func (s *Service) Reset(ctx context.Context, l *Learner) error {
	now := s.now()
	l.QuizHistory = nil
	l.CognitiveProfile = cognitive.Profile{}
	l.SkillGraph = skillgraph.StarterGraph(now)
	if err := s.events.DeleteLearner(ctx, l.ID); err != nil {
		return err
	}
	return s.Save(ctx, l)
}

// AnalysisRecord is the payload of a persisted profiler pass.
type AnalysisRecord struct {
	Insights []cognitive.Insight `json:"insights"`
	Profile  cognitive.Profile   `json:"profile"`
	Attempts int                 `json:"attempts"`
}

// Analyze runs a profiler pass over the learner's history, applies it and
// appends it to the analysis log. An empty history is a no-op.
func (s *Service) Analyze(ctx context.Context, l *Learner) (cognitive.Analysis, error) {
	if len(l.QuizHistory) == 0 {
		return cognitive.Analysis{}, nil
	}
	an := cognitive.Analyze(l.QuizHistory)
	l.ApplyAnalysis(an)

	rec := AnalysisRecord{Insights: an.Insights, Profile: l.CognitiveProfile, Attempts: len(an.Window)}
	if _, err := s.events.AppendAnalysis(ctx, l.ID, rec); err != nil {
		return an, fmt.Errorf("append analysis: %w", err)
	}
	s.logger.Debug("analysis recorded", "learner", l.ID, "insights", len(an.Insights))
	return an, s.Save(ctx, l)
}

// FinishSession records a completed quiz session and runs a profiler pass.
func (s *Service) FinishSession(ctx context.Context, l *Learner, sum session.Summary) (cognitive.Analysis, error) {
	if _, err := s.events.AppendSession(ctx, l.ID, sum); err != nil {
		return cognitive.Analysis{}, fmt.Errorf("append session: %w", err)
	}
	s.logger.Info("session finished",
		"learner", l.ID,
		"session", sum.ID,
		"concept", sum.Concept,
		"correct", sum.TotalCorrect,
		"questions", sum.TotalQuestions,
	)
	return s.Analyze(ctx, l)
}

// Analyses returns the learner's most recent profiler passes, newest first.
func (s *Service) Analyses(ctx context.Context, id string, limit int) ([]AnalysisRecord, error) {
	events, err := s.events.ListAnalyses(ctx, id, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]AnalysisRecord, 0, len(events))
	for _, e := range events {
		var rec AnalysisRecord
		if err := e.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode analysis %d: %w", e.Sequence, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Sessions returns the learner's most recent sessions, newest first.
func (s *Service) Sessions(ctx context.Context, id string, limit int) ([]session.Summary, error) {
	events, err := s.events.ListSessions(ctx, id, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]session.Summary, 0, len(events))
	for _, e := range events {
		var sum session.Summary
		if err := e.Decode(&sum); err != nil {
			return nil, fmt.Errorf("decode session %d: %w", e.Sequence, err)
		}
		out = append(out, sum)
	}
	return out, nil
}
