package civil

import "time"

// Clock reads the current instant from a real-time source.
//
// Implementations carry no state across calls and are callable with no
// prior initialization, from any point in control flow. A failed read
// reports CLOCK_UNAVAILABLE and is fatal to the calling operation; the
// package never retries internally.
type Clock interface {
	Now() (Instant, error)
}

// SystemClock reads the platform real-time clock.
//
// Thread-safety: SystemClock is stateless and safe for concurrent use.
type SystemClock struct{}

// Now returns the current instant.
//
// The Go runtime surfaces real-time clock reads as infallible; the error
// return exists for the Clock contract so substitutes (and platforms where
// the read can fail) have a CLOCK_UNAVAILABLE path.
func (SystemClock) Now() (Instant, error) {
	t := time.Now()
	return Instant{
		Seconds:     t.Unix(),
		Nanoseconds: uint32(t.Nanosecond()),
	}, nil
}
