package learner

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/session"
	"github.com/abhisek/skillforge/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "learner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := NewService(st.RecordRepo(), st.EventRepo(), nil)
	svc.SetBcryptCost(bcrypt.MinCost)
	svc.now = func() time.Time { return t0 }
	return svc
}

func TestService_SignupAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	got, err := svc.Login(ctx, "ADA@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)
	assert.Len(t, got.SkillGraph, 4)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// indexFailingRepo rejects writes to the email index.
type indexFailingRepo struct {
	store.RecordRepo
}

func (r indexFailingRepo) Save(ctx context.Context, key string, v any) error {
	if strings.HasPrefix(key, store.EmailKeyPrefix) {
		return errors.New("disk full")
	}
	return r.RecordRepo.Save(ctx, key, v)
}

func TestService_SignupIndexFailureLeavesNoRecord(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "learner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := NewService(indexFailingRepo{st.RecordRepo()}, st.EventRepo(), nil)
	svc.SetBcryptCost(bcrypt.MinCost)
	ctx := context.Background()

	_, err = svc.Signup(ctx, validSignup())
	require.ErrorContains(t, err, "index email")

	keys, err := st.RecordRepo().Keys(ctx, store.UserKeyPrefix, 0)
	require.NoError(t, err)
	assert.Empty(t, keys)

	recent, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestService_SignupDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	dup := validSignup()
	dup.Email = " Ada@Example.com"
	_, err = svc.Signup(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_SaveGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	l.RecordAttempt(history.Attempt{
		QuestionID: "arr_easy_1",
		Concept:    questionbank.ConceptArrays,
		Difficulty: questionbank.Easy,
		Correct:    true,
		TimeSpent:  6,
		Confidence: history.Confidence(4),
		Timestamp:  t0,
	})
	require.NoError(t, svc.Save(ctx, l))

	got, err := svc.Get(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, got.QuizHistory, 1)
	assert.Equal(t, 4, *got.QuizHistory[0].Confidence)
	assert.Equal(t, 5, got.SkillGraph.Level(questionbank.ConceptArrays))
	assert.Equal(t, 6.0, got.CognitiveProfile.AverageSpeed)

	_, err = svc.Get(ctx, "user_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_FinishSessionAndAnalyses(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		l.RecordAttempt(history.Attempt{Concept: questionbank.ConceptLoops, Correct: false, TimeSpent: 3, Timestamp: t0})
	}
	an, err := svc.FinishSession(ctx, l, session.Summary{ID: "s1", Concept: questionbank.ConceptLoops, TotalQuestions: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, an.Insights)

	recs, err := svc.Analyses(ctx, l.ID, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 0.8, recs[0].Profile.ImpulsivityIndex)
	assert.Equal(t, 3, recs[0].Attempts)

	sums, err := svc.Sessions(ctx, l.ID, 0)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, "s1", sums[0].ID)

	stored, err := svc.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.8, stored.CognitiveProfile.ImpulsivityIndex)
}

func TestService_AnalyzeEmptyHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	an, err := svc.Analyze(ctx, l)
	require.NoError(t, err)
	assert.Empty(t, an.Insights)

	recs, err := svc.Analyses(ctx, l.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestService_ResetAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	l.RecordAttempt(history.Attempt{Concept: questionbank.ConceptArrays, Correct: true, TimeSpent: 3, Timestamp: t0})
	require.NoError(t, svc.Save(ctx, l))

	require.NoError(t, svc.Reset(ctx, l))
	got, err := svc.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, got.QuizHistory)
	assert.Equal(t, 0, got.SkillGraph.Level(questionbank.ConceptArrays))

	recent, err := svc.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	require.NoError(t, svc.Delete(ctx, l.ID))
	_, err = svc.Get(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Email is free again.
	_, err = svc.Signup(ctx, validSignup())
	assert.NoError(t, err)
}
