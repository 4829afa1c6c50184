// Package store provides SQLite-backed storage for the conversion history
// log.
//
// The log is append-only: one record per CLI conversion, with the operation
// name and the numeric input and output serialized as JSON. Records carry
// two identities:
//
//   - id: a UUIDv7, unique per record
//   - seq: a monotonic integer assigned by the store at insert time
//
// All ordering uses seq; the recorded wall-clock time is display-only and
// never used for ordering (the host clock can move backward, seq cannot).
// Reads order by seq with an id COLLATE BINARY tiebreak so listings are
// identical across runs.
//
// Database configuration:
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - single-connection pool: SQLite allows one writer at a time
//
// History is an optional CLI convenience. The conversion core itself stays
// persistence-free; nothing in this package is reachable from it.
package store
