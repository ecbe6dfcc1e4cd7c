package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by RecordRepo.Load when no record has the key.
var ErrNotFound = errors.New("record not found")

// Key namespaces.
const (
	UserKeyPrefix  = "skillforge_user:"
	EmailKeyPrefix = "skillforge_email:"
)

// UserKey returns the record key of a learner.
func UserKey(id string) string {
	return UserKeyPrefix + id
}

// EmailKey returns the key of the email-to-learner index entry. Emails are
// matched case-insensitively.
func EmailKey(email string) string {
	return EmailKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// RecordRepo is an opaque JSON key-value store.
type RecordRepo interface {
	// Load decodes the record stored under key into v, or returns ErrNotFound.
	Load(ctx context.Context, key string, v any) error

	// Save encodes v and stores it under key, replacing any existing record.
	Save(ctx context.Context, key string, v any) error

	// Delete removes the record under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists keys with the given prefix, most recently updated first.
	Keys(ctx context.Context, prefix string, limit int) ([]string, error)
}

// Event kinds.
const (
	KindAnalysis = "analysis"
	KindSession  = "session"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// Event is one appended event. Data holds the JSON payload.
type Event struct {
	Sequence  int64
	Kind      string
	LearnerID string
	Timestamp time.Time
	Data      []byte
}

// Decode unmarshals the event payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Data, v)
}

// EventRepo provides append and query access to learner events.
type EventRepo interface {
	// AppendAnalysis records a profiler pass and returns its sequence.
	AppendAnalysis(ctx context.Context, learnerID string, data any) (int64, error)

	// ListAnalyses returns a learner's analyses, newest first.
	ListAnalyses(ctx context.Context, learnerID string, opts QueryOpts) ([]Event, error)

	// AppendSession records a finished quiz session and returns its sequence.
	AppendSession(ctx context.Context, learnerID string, data any) (int64, error)

	// ListSessions returns a learner's sessions, newest first.
	ListSessions(ctx context.Context, learnerID string, opts QueryOpts) ([]Event, error)

	// DeleteLearner removes every event of a learner.
	DeleteLearner(ctx context.Context, learnerID string) error
}
