package batch

import (
	"slices"
	"strings"

	"github.com/nathanial/chronos/internal/civil"
)

// Result is the outcome of one job.
// Exactly one of Instant/DateTime/Err is set.
type Result struct {
	// Job is the compiled job that produced this result.
	Job Job

	// DateTime holds the decoded civil fields (decode jobs).
	DateTime *civil.DateTime

	// Instant holds the encoded instant (encode jobs).
	Instant *civil.Instant

	// Err holds the conversion failure, if any.
	Err error
}

// Run executes jobs in name order against the pure converter.
//
// Jobs are sorted by name so a batch produces the same result sequence
// regardless of declaration order or directory layout. Decode jobs with
// zone "local" resolve through local; pass civil.LocalResolver for the host
// zone or a FixedResolver for reproducible runs.
//
// Per-job failures land in the job's Result; one bad job does not stop the
// rest of the batch.
func Run(jobs []*Job, local civil.Resolver) []Result {
	sorted := slices.Clone(jobs)
	slices.SortFunc(sorted, func(a, b *Job) int {
		return strings.Compare(a.Name, b.Name)
	})

	results := make([]Result, 0, len(sorted))
	for _, job := range sorted {
		results = append(results, runJob(job, local))
	}
	return results
}

func runJob(job *Job, local civil.Resolver) Result {
	res := Result{Job: *job}

	switch job.Op {
	case OpDecode:
		instant := civil.Instant{Seconds: job.Seconds, Nanoseconds: job.Nanos}
		var resolver civil.Resolver = civil.UTCResolver{}
		if job.Zone == ZoneLocal {
			resolver = local
		}
		dt, err := resolver.Resolve(instant)
		if err != nil {
			res.Err = err
			return res
		}
		res.DateTime = &dt

	case OpEncode:
		instant, err := civil.FromUTC(job.Fields)
		if err != nil {
			res.Err = err
			return res
		}
		res.Instant = &instant

	default:
		res.Err = civil.NewInvalidFieldError("op", 0, "unknown op "+string(job.Op))
	}

	return res
}

// toCanonicalMap flattens a Result for canonical serialization.
func (r Result) toCanonicalMap() map[string]any {
	m := map[string]any{
		"job": r.Job.Name,
		"op":  string(r.Job.Op),
	}

	switch {
	case r.Err != nil:
		m["status"] = "error"
		m["error"] = r.Err.Error()
	case r.DateTime != nil:
		m["status"] = "ok"
		m["year"] = int64(r.DateTime.Year)
		m["month"] = int64(r.DateTime.Month)
		m["day"] = int64(r.DateTime.Day)
		m["hour"] = int64(r.DateTime.Hour)
		m["minute"] = int64(r.DateTime.Minute)
		m["second"] = int64(r.DateTime.Second)
		m["nanosecond"] = int64(r.DateTime.Nanosecond)
	case r.Instant != nil:
		m["status"] = "ok"
		m["seconds"] = r.Instant.Seconds
		m["nanoseconds"] = int64(r.Instant.Nanoseconds)
	}

	return m
}

// MarshalResults serializes results as a canonical JSON array, suitable for
// golden-file comparison.
func MarshalResults(results []Result) ([]byte, error) {
	list := make([]any, len(results))
	for i, r := range results {
		list[i] = r.toCanonicalMap()
	}
	return MarshalCanonical(list)
}
