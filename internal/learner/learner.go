// Package learner owns a learner's record: account details, skill graph,
// cognitive profile and quiz history.
package learner

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/skillforge/internal/cognitive"
	"github.com/abhisek/skillforge/internal/history"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/skillgraph"
)

// IDPrefix prefixes every learner ID.
const IDPrefix = "user_"

// ErrInvalidSignup wraps every signup validation failure.
var ErrInvalidSignup = errors.New("invalid signup")

// SignupData is what a new learner provides.
type SignupData struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// Learner is the persisted learner record.
type Learner struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Mobile           string            `json:"mobile"`
	PasswordHash     string            `json:"passwordHash"`
	SkillGraph       skillgraph.Graph  `json:"skillGraph"`
	CognitiveProfile cognitive.Profile `json:"cognitiveProfile"`
	QuizHistory      history.Log       `json:"quizHistory"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// New validates data and creates a learner with the starter skill graph
// and a zero profile.
func New(data SignupData, cost int, now time.Time) (*Learner, error) {
	data.Name = strings.TrimSpace(data.Name)
	data.Email = strings.TrimSpace(data.Email)
	data.Mobile = strings.TrimSpace(data.Mobile)

	if data.Name == "" || data.Email == "" || data.Mobile == "" || data.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrInvalidSignup)
	}
	if _, err := mail.ParseAddress(data.Email); err != nil {
		return nil, fmt.Errorf("%w: email %q: %v", ErrInvalidSignup, data.Email, err)
	}
	if s := PasswordStrength(data.Password); s.Score < MinPasswordScore {
		return nil, fmt.Errorf("%w: password is too weak (%s)", ErrInvalidSignup, s.Label)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &Learner{
		ID:           IDPrefix + uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		Mobile:       data.Mobile,
		PasswordHash: string(hash),
		SkillGraph:   skillgraph.StarterGraph(now),
		CreatedAt:    now,
	}, nil
}

// CheckPassword reports whether password matches the stored hash.
func (l *Learner) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte(password)) == nil
}

// Redacted returns a copy without the password hash, for display.
func (l *Learner) Redacted() Learner {
	c := *l
	c.PasswordHash = ""
	return c
}

// RecordAttempt appends a, recomputes the profile averages from the full
// history and applies the quiz level delta.
func (l *Learner) RecordAttempt(a history.Attempt) {
	l.QuizHistory = l.QuizHistory.Append(a)
	l.CognitiveProfile = l.CognitiveProfile.Apply(cognitive.Averages(l.QuizHistory))
	l.SkillGraph = skillgraph.ApplyDelta(l.SkillGraph, a.Concept, skillgraph.QuizDelta(a.Correct), a.Timestamp)
}

// ApplyAnalysis writes a profiler pass into the profile and tags concepts
// with repeated mistakes as conceptual weaknesses.
func (l *Learner) ApplyAnalysis(an cognitive.Analysis) {
	l.CognitiveProfile = l.CognitiveProfile.Apply(an.Delta)
	for _, c := range an.WeakConcepts() {
		l.SkillGraph = skillgraph.TagWeakness(l.SkillGraph, c, skillgraph.WeaknessConceptual)
	}
}

// ApplyRemediation applies the remediation level delta for one answer.
func (l *Learner) ApplyRemediation(concept questionbank.Concept, correct bool, now time.Time) {
	l.SkillGraph = skillgraph.ApplyDelta(l.SkillGraph, concept, skillgraph.RemediationDelta(correct), now)
}
