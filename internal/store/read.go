package store

import (
	"context"
	"fmt"
)

// ListRecent returns up to limit records, newest first.
// Ordering is deterministic: ORDER BY seq DESC, id COLLATE BINARY ASC.
//
// Returns an empty slice (not nil) if the log is empty.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, op, input, output, recorded_unix
		FROM conversions
		ORDER BY seq DESC, id COLLATE BINARY ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Seq, &rec.Op, &rec.Input, &rec.Output, &rec.RecordedUnix); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}

	return records, nil
}

// Count returns the number of records in the log.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM conversions").Scan(&n); err != nil {
		return 0, fmt.Errorf("count conversions: %w", err)
	}
	return n, nil
}
