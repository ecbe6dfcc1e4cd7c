package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// recordRepo implements RecordRepo on the records table.
type recordRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *recordRepo) Load(ctx context.Context, key string, v any) error {
	query, args := builder().
		Select("data").
		From(entsql.Table("records")).
		Where(entsql.EQ("record_key", key)).
		Query()

	var data string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	query, args := builder().
		Insert("records").
		Columns("record_key", "data", "updated_at").
		Values(key, string(data), formatTime(r.now())).
		OnConflict(
			entsql.ConflictColumns("record_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete("records").
		Where(entsql.EQ("record_key", key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Keys(ctx context.Context, prefix string, limit int) ([]string, error) {
	sel := builder().
		Select("record_key").
		From(entsql.Table("records")).
		Where(entsql.HasPrefix("record_key", prefix)).
		OrderBy(entsql.Desc("updated_at"), "record_key")
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
