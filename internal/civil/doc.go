// Package civil converts between Unix-epoch instants and civil calendar
// fields, in UTC and in the host's local zone.
//
// The package has three parts, none of which share state:
//
//   - Clock: reads the platform real-time clock (SystemClock).
//   - Calendar converter: ToUTC decomposes an Instant into DateTime fields
//     using the proleptic Gregorian calendar; FromUTC is its exact inverse
//     over valid fields. Local decomposition goes through a Resolver, which
//     delegates to the platform's zone rules rather than reimplementing them.
//   - Offset calculator: LocalOffset derives the current local-UTC offset
//     from one clock read and two decompositions.
//
// CRITICAL PATTERNS:
//
// CP-1: Pure Conversions
// ToUTC and FromUTC are pure functions over plain values. No caching, no
// globals, no allocation beyond the result. Concurrent callers need no
// coordination.
//
// CP-2: Platform Zone Delegation
// Local-time resolution is an injected capability (Resolver). The package
// never reads the tz database itself, so tests can substitute a fixed zone
// and the host zone can change between calls without breaking anything.
//
// CP-3: Strict Inverse
// FromUTC rejects out-of-range fields (INVALID_FIELD) instead of
// normalizing them. For every Instant with valid nanoseconds,
// FromUTC(ToUTC(i)) == i.
//
// Leap seconds are ignored, as POSIX time does. Timestamp strings are out of
// scope; callers exchange discrete numeric fields only.
package civil
