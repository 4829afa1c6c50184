package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is one conversion history entry.
type Record struct {
	// ID is a UUIDv7 assigned at write time.
	ID string `json:"id"`

	// Seq is the store-assigned monotonic position.
	Seq int64 `json:"seq"`

	// Op names the operation: "now", "decode.utc", "decode.local",
	// "encode", "offset".
	Op string `json:"op"`

	// Input is the operation input serialized as JSON ("{}" for none).
	Input string `json:"input"`

	// Output is the operation result serialized as JSON.
	Output string `json:"output"`

	// RecordedUnix is the wall-clock second the record was written.
	// Display only; ordering always uses Seq.
	RecordedUnix int64 `json:"recorded_unix"`
}

// Append writes a conversion record and returns it with ID, Seq, and
// RecordedUnix filled in.
//
// Seq assignment and the insert happen in one statement, so concurrent
// appenders cannot obtain the same position (the single-connection pool
// serializes them, and the UNIQUE index on seq backstops that).
func (s *Store) Append(ctx context.Context, op, input, output string) (Record, error) {
	rec := Record{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Op:           op,
		Input:        input,
		Output:       output,
		RecordedUnix: time.Now().Unix(),
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO conversions (id, seq, op, input, output, recorded_unix)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM conversions), ?, ?, ?, ?)
		RETURNING seq
	`,
		rec.ID,
		rec.Op,
		rec.Input,
		rec.Output,
		rec.RecordedUnix,
	).Scan(&rec.Seq)
	if err != nil {
		return Record{}, fmt.Errorf("append conversion: %w", err)
	}

	return rec, nil
}
