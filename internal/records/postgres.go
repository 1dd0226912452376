package records

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"defensoria/pkg/platform/sentinel"
)

// PostgresStore serves case records from a radicados table. Column names
// surface as record keys, so alias resolution works the same against either
// backend. Like the CSV store, a successful load is cached for the process
// lifetime; a failed load is not cached, so a later call may succeed once
// the database recovers.
type PostgresStore struct {
	db    *sql.DB
	table string

	mu      sync.Mutex
	loaded  bool
	records []Record
}

// NewPostgres constructs a store reading from the radicados table.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, table: "radicados"}
}

func (s *PostgresStore) All(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.records, nil
	}

	recs, err := s.query(ctx)
	if err != nil {
		return nil, fmt.Errorf("load case records: %v: %w", err, sentinel.ErrUnavailable)
	}
	s.records = recs
	s.loaded = true
	return s.records, nil
}

func (s *PostgresStore) query(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM `+s.table+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var recs []Record
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scan := make([]any, len(cols))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, err
		}

		rec := make(Record, len(cols))
		for i, col := range cols {
			if values[i].Valid {
				rec[col] = values[i].String
			}
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
