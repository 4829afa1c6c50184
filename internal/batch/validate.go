package batch

import (
	"fmt"

	"github.com/nathanial/chronos/internal/civil"
)

// Validation error codes (E100-E199)
const (
	ErrInvalidOp     = "E101" // op is not decode/encode
	ErrInvalidZone   = "E102" // zone is not utc/local
	ErrNanosRange    = "E103" // nanoseconds outside 0..999999999
	ErrFieldRange    = "E104" // calendar field outside its range
	ErrDuplicateName = "E105" // two jobs share a name
	ErrNoJobs        = "E106" // job file declares nothing
)

// ValidationError represents a range or consistency problem in a job.
type ValidationError struct {
	Job     string `json:"job"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] job %s: %s: %s", e.Code, e.Job, e.Field, e.Message)
}

// Validate checks a compiled job's ranges.
// Returns all errors found (does not fail-fast).
func Validate(job *Job) []ValidationError {
	var errs []ValidationError

	switch job.Op {
	case OpDecode:
		if job.Zone != ZoneUTC && job.Zone != ZoneLocal {
			errs = append(errs, ValidationError{
				Job: job.Name, Field: "zone", Code: ErrInvalidZone,
				Message: fmt.Sprintf("zone %q must be %q or %q", job.Zone, ZoneUTC, ZoneLocal),
			})
		}
		if job.Nanos > civil.MaxNanoseconds {
			errs = append(errs, ValidationError{
				Job: job.Name, Field: "nanos", Code: ErrNanosRange,
				Message: fmt.Sprintf("nanos %d must be in 0..%d", job.Nanos, uint32(civil.MaxNanoseconds)),
			})
		}
	case OpEncode:
		errs = append(errs, validateEncodeFields(job)...)
	default:
		errs = append(errs, ValidationError{
			Job: job.Name, Field: "op", Code: ErrInvalidOp,
			Message: fmt.Sprintf("op %q must be %q or %q", job.Op, OpDecode, OpEncode),
		})
	}

	return errs
}

// validateEncodeFields reuses the converter's strict field policy so batch
// validation and direct FromUTC calls reject exactly the same inputs.
func validateEncodeFields(job *Job) []ValidationError {
	_, err := civil.FromUTC(job.Fields)
	if err == nil {
		return nil
	}

	ve := ValidationError{Job: job.Name, Field: "fields", Code: ErrFieldRange, Message: err.Error()}
	if ce, ok := err.(*civil.Error); ok && ce.Field != "" {
		ve.Field = ce.Field
	}
	return []ValidationError{ve}
}

// ValidateAll validates a job set, including cross-job checks.
func ValidateAll(jobs []*Job) []ValidationError {
	var errs []ValidationError

	if len(jobs) == 0 {
		return []ValidationError{{
			Job: "-", Field: "job", Code: ErrNoJobs,
			Message: "no jobs declared",
		}}
	}

	seen := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		if seen[job.Name] {
			errs = append(errs, ValidationError{
				Job: job.Name, Field: "name", Code: ErrDuplicateName,
				Message: "duplicate job name",
			})
			continue
		}
		seen[job.Name] = true
		errs = append(errs, Validate(job)...)
	}

	return errs
}
