package civil

import "fmt"

// MaxNanoseconds is the largest valid fractional component of an Instant.
const MaxNanoseconds = 999_999_999

// Instant is an absolute point in time: whole seconds since the Unix epoch
// (1970-01-01T00:00:00Z) plus a non-negative fractional part.
//
// Negative Seconds denote instants before 1970. The invariant
// 0 <= Nanoseconds <= MaxNanoseconds holds for every Instant this package
// produces; FromUTC enforces it on the inverse path.
//
// Instant is a plain value. Copy it freely.
type Instant struct {
	Seconds     int64
	Nanoseconds uint32
}

// String renders the instant as "<seconds>.<nanoseconds>" for diagnostics.
// This is not a wire format.
func (i Instant) String() string {
	return fmt.Sprintf("%d.%09d", i.Seconds, i.Nanoseconds)
}

// DateTime is a civil calendar date plus wall-clock time in some fixed,
// implicit zone. The zone is not stored in the value; the caller must track
// which conversion produced it.
//
// Field ranges: Month 1-12, Day 1-31 (bounded by DaysInMonth), Hour 0-23,
// Minute 0-59, Second 0-59, Nanosecond 0-999,999,999. Year follows the
// proleptic Gregorian calendar and may be zero or negative.
type DateTime struct {
	Year       int32
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
}

// String renders the fields in a fixed diagnostic layout.
func (dt DateTime) String() string {
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d.%09d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond)
}

// Offset is a local-UTC offset in seconds: local = utc + offset.
// Positive east of UTC, negative west, zero at UTC.
type Offset int32
