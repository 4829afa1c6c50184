package civil

import (
	"fmt"
	"math"
	"time"
)

// Resolver decomposes an instant into civil fields for one fixed zone.
//
// The zone is a property of the resolver, not of the returned DateTime.
// Implementations must be pure apart from reading zone rules: same instant,
// same rules, same fields. Resolvers are safe for concurrent use.
//
// CP-2: local-time resolution is injected through this interface so the
// platform zone database stays an external collaborator and tests can
// substitute a fixed zone.
type Resolver interface {
	Resolve(i Instant) (DateTime, error)
}

// UTCResolver resolves instants as UTC. Never fails.
type UTCResolver struct{}

// Resolve implements Resolver via the pure Gregorian decomposition.
func (UTCResolver) Resolve(i Instant) (DateTime, error) {
	return ToUTC(i), nil
}

// LocalResolver resolves instants in the host's configured local zone,
// including whatever daylight-saving state applies at that instant.
//
// Resolution is delegated to the platform zone rules. The host zone
// configuration may change between calls; callers must tolerate results
// changing for that reason.
type LocalResolver struct{}

// Resolve implements Resolver using the process-wide local zone.
//
// Fails with CONVERSION_FAILURE if the resolved year does not fit the
// DateTime year field, which is the one way platform resolution can reject
// an otherwise representable instant.
func (LocalResolver) Resolve(i Instant) (DateTime, error) {
	t := time.Unix(i.Seconds, int64(i.Nanoseconds)).In(time.Local)
	return fieldsFromTime(t, i.Nanoseconds)
}

// FixedResolver resolves instants in a zone with a constant UTC offset and
// no daylight-saving transitions. Used by tests and for pinning a zone
// independent of host configuration.
type FixedResolver struct {
	// Offset is the constant local-UTC offset in seconds.
	Offset Offset
}

// Resolve implements Resolver by shifting the instant and decomposing as UTC.
func (r FixedResolver) Resolve(i Instant) (DateTime, error) {
	return ToUTC(Instant{
		Seconds:     i.Seconds + int64(r.Offset),
		Nanoseconds: i.Nanoseconds,
	}), nil
}

// ToLocal decomposes an instant into the host's local civil fields.
// Convenience over LocalResolver.
func ToLocal(i Instant) (DateTime, error) {
	return LocalResolver{}.Resolve(i)
}

// fieldsFromTime extracts DateTime fields from a resolved time.Time.
// The nanosecond component is carried through from the instant unchanged.
func fieldsFromTime(t time.Time, nanos uint32) (DateTime, error) {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	if year < math.MinInt32 || year > math.MaxInt32 {
		return DateTime{}, NewConversionFailureError(
			fmt.Sprintf("local time resolution produced unrepresentable year %d", year))
	}

	return DateTime{
		Year:       int32(year),
		Month:      uint8(month),
		Day:        uint8(day),
		Hour:       uint8(hour),
		Minute:     uint8(minute),
		Second:     uint8(second),
		Nanosecond: nanos,
	}, nil
}
