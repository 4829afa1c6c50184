package civil

import "fmt"

// LocalOffset computes the seconds to add to the current UTC instant to
// obtain the current local instant, under whatever daylight-saving state
// the local resolver reports for right now.
//
// Algorithm: take one instant from the clock, decompose it twice (once as
// UTC, once through local), then reinterpret both decompositions as UTC
// civil fields and re-encode them with FromUTC. The difference between the
// two re-encodings is the offset. This double reinterpretation needs no
// direct access to the zone's raw offset field; it relies only on the
// forward and inverse conversions already defined.
//
// Fails with CLOCK_UNAVAILABLE if the clock read fails and
// CONVERSION_FAILURE if local resolution rejects the instant or emits
// fields the inverse conversion cannot accept.
func LocalOffset(clock Clock, local Resolver) (Offset, error) {
	now, err := clock.Now()
	if err != nil {
		return 0, err
	}

	utcFields := ToUTC(now)
	localFields, err := local.Resolve(now)
	if err != nil {
		return 0, err
	}

	utcEncoded, err := FromUTC(utcFields)
	if err != nil {
		return 0, NewConversionFailureError(fmt.Sprintf("re-encoding UTC fields: %v", err))
	}
	localEncoded, err := FromUTC(localFields)
	if err != nil {
		return 0, NewConversionFailureError(fmt.Sprintf("re-encoding local fields: %v", err))
	}

	return Offset(localEncoded.Seconds - utcEncoded.Seconds), nil
}

// LocalOffsetNow computes the current local-UTC offset against the system
// clock and the host's configured zone.
func LocalOffsetNow() (Offset, error) {
	return LocalOffset(SystemClock{}, LocalResolver{})
}
