package batch

import "github.com/nathanial/chronos/internal/civil"

// Op identifies the conversion a job performs.
type Op string

const (
	// OpDecode converts an instant to civil fields.
	OpDecode Op = "decode"

	// OpEncode converts UTC civil fields to an instant.
	OpEncode Op = "encode"
)

// Zone selects the decomposition zone for decode jobs.
type Zone string

const (
	// ZoneUTC decomposes through the pure Gregorian converter.
	ZoneUTC Zone = "utc"

	// ZoneLocal decomposes through the run's local resolver.
	// Local decode jobs are host-dependent and unsuitable for golden files.
	ZoneLocal Zone = "local"
)

// Job is one compiled conversion job.
//
// For OpDecode, Seconds/Nanos carry the input instant and Zone selects the
// decomposition. For OpEncode, Fields carries the input civil fields and
// Nanos is folded into Fields.Nanosecond at compile time.
type Job struct {
	Name    string
	Op      Op
	Zone    Zone
	Seconds int64
	Nanos   uint32
	Fields  civil.DateTime
}
