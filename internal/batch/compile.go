package batch

import (
	"fmt"
	"math"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// CompileError represents a structural problem in a job declaration.
type CompileError struct {
	// Field is the job field that failed to compile.
	Field string

	// Message is a human-readable description.
	Message string

	// Pos is the CUE source position if available.
	Pos token.Pos
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompileJob parses a CUE value into a Job.
//
// The CUE value should be the job struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`job: epoch: { op: "decode", seconds: 0 }`)
//	job, err := CompileJob("epoch", v.LookupPath(cue.ParsePath("job.epoch")))
//
// CompileJob extracts fields and checks their presence and JSON-level types.
// Range checking (month 13, day 32, nanosecond overflow) is Validate's job.
func CompileJob(name string, v cue.Value) (*Job, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	job := &Job{Name: name}

	opVal := v.LookupPath(cue.ParsePath("op"))
	if !opVal.Exists() {
		return nil, &CompileError{Field: "op", Message: "op is required", Pos: v.Pos()}
	}
	op, err := opVal.String()
	if err != nil {
		return nil, &CompileError{Field: "op", Message: "op must be a string", Pos: opVal.Pos()}
	}
	job.Op = Op(op)

	switch job.Op {
	case OpDecode:
		return compileDecode(job, v)
	case OpEncode:
		return compileEncode(job, v)
	default:
		// Leave op checking to Validate so unknown ops surface with a
		// stable code instead of a compile failure.
		return job, nil
	}
}

func compileDecode(job *Job, v cue.Value) (*Job, error) {
	job.Zone = ZoneUTC
	if zoneVal := v.LookupPath(cue.ParsePath("zone")); zoneVal.Exists() {
		zone, err := zoneVal.String()
		if err != nil {
			return nil, &CompileError{Field: "zone", Message: "zone must be a string", Pos: zoneVal.Pos()}
		}
		job.Zone = Zone(zone)
	}

	seconds, err := requireInt(v, "seconds", math.MinInt64, math.MaxInt64)
	if err != nil {
		return nil, err
	}
	job.Seconds = seconds

	nanos, err := optionalInt(v, "nanos", 0, math.MaxUint32)
	if err != nil {
		return nil, err
	}
	job.Nanos = uint32(nanos)

	return job, nil
}

func compileEncode(job *Job, v cue.Value) (*Job, error) {
	year, err := requireInt(v, "year", math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	month, err := requireInt(v, "month", 0, math.MaxUint8)
	if err != nil {
		return nil, err
	}
	day, err := requireInt(v, "day", 0, math.MaxUint8)
	if err != nil {
		return nil, err
	}

	hour, err := optionalInt(v, "hour", 0, math.MaxUint8)
	if err != nil {
		return nil, err
	}
	minute, err := optionalInt(v, "minute", 0, math.MaxUint8)
	if err != nil {
		return nil, err
	}
	second, err := optionalInt(v, "second", 0, math.MaxUint8)
	if err != nil {
		return nil, err
	}
	nanos, err := optionalInt(v, "nanos", 0, math.MaxUint32)
	if err != nil {
		return nil, err
	}

	job.Fields.Year = int32(year)
	job.Fields.Month = uint8(month)
	job.Fields.Day = uint8(day)
	job.Fields.Hour = uint8(hour)
	job.Fields.Minute = uint8(minute)
	job.Fields.Second = uint8(second)
	job.Fields.Nanosecond = uint32(nanos)

	return job, nil
}

// requireInt extracts a required integer field, rejecting values outside
// [lo, hi] so later narrowing casts cannot wrap.
func requireInt(v cue.Value, field string, lo, hi int64) (int64, error) {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return 0, &CompileError{Field: field, Message: field + " is required", Pos: v.Pos()}
	}
	n, err := fieldVal.Int64()
	if err != nil {
		return 0, &CompileError{Field: field, Message: field + " must be an integer", Pos: fieldVal.Pos()}
	}
	if n < lo || n > hi {
		return 0, &CompileError{
			Field:   field,
			Message: fmt.Sprintf("%s %d does not fit its field (allowed %d..%d)", field, n, lo, hi),
			Pos:     fieldVal.Pos(),
		}
	}
	return n, nil
}

// optionalInt extracts an optional non-negative integer field. The [0, hi]
// bound only protects the narrowing cast; Validate owns range semantics.
func optionalInt(v cue.Value, field string, def, hi int64) (int64, error) {
	fieldVal := v.LookupPath(cue.ParsePath(field))
	if !fieldVal.Exists() {
		return def, nil
	}
	n, err := fieldVal.Int64()
	if err != nil {
		return 0, &CompileError{Field: field, Message: field + " must be an integer", Pos: fieldVal.Pos()}
	}
	if n < 0 || n > hi {
		return 0, &CompileError{
			Field:   field,
			Message: fmt.Sprintf("%s %d does not fit its field (allowed 0..%d)", field, n, hi),
			Pos:     fieldVal.Pos(),
		}
	}
	return n, nil
}

// formatCUEError converts a CUE evaluation error into a CompileError with
// position information.
func formatCUEError(err error) *CompileError {
	pos := token.NoPos
	if positions := cueerrors.Positions(err); len(positions) > 0 {
		pos = positions[0]
	}
	return &CompileError{
		Field:   "cue",
		Message: cueerrors.Details(err, nil),
		Pos:     pos,
	}
}
