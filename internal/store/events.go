package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on the events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) AppendAnalysis(ctx context.Context, learnerID string, data any) (int64, error) {
	return r.append(ctx, KindAnalysis, learnerID, data)
}

func (r *eventRepo) ListAnalyses(ctx context.Context, learnerID string, opts QueryOpts) ([]Event, error) {
	return r.list(ctx, KindAnalysis, learnerID, opts)
}

func (r *eventRepo) AppendSession(ctx context.Context, learnerID string, data any) (int64, error) {
	return r.append(ctx, KindSession, learnerID, data)
}

func (r *eventRepo) ListSessions(ctx context.Context, learnerID string, opts QueryOpts) ([]Event, error) {
	return r.list(ctx, KindSession, learnerID, opts)
}

func (r *eventRepo) DeleteLearner(ctx context.Context, learnerID string) error {
	query, args := builder().
		Delete("events").
		Where(entsql.EQ("learner_id", learnerID)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	return nil
}

func (r *eventRepo) append(ctx context.Context, kind, learnerID string, data any) (int64, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("encode %s event: %w", kind, err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert("events").
		Columns("sequence", "kind", "learner_id", "timestamp", "data").
		Values(seqNum, kind, learnerID, formatTime(r.now()), string(payload)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("save %s event: %w", kind, err)
	}
	return seqNum, nil
}

func (r *eventRepo) list(ctx context.Context, kind, learnerID string, opts QueryOpts) ([]Event, error) {
	preds := []*entsql.Predicate{
		entsql.EQ("kind", kind),
		entsql.EQ("learner_id", learnerID),
	}

	sel := builder().
		Select("sequence", "kind", "learner_id", "timestamp", "data").
		From(entsql.Table("events")).
		Where(entsql.And(preds...)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s events: %w", kind, err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e    Event
			ts   string
			data string
		)
		if err := rows.Scan(&e.Sequence, &e.Kind, &e.LearnerID, &ts, &data); err != nil {
			return nil, fmt.Errorf("scan %s event: %w", kind, err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp: %w", err)
		}
		e.Data = []byte(data)
		events = append(events, e)
	}
	return events, rows.Err()
}
