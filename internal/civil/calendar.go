package civil

import "fmt"

// Calendar arithmetic over the proleptic Gregorian calendar.
//
// The day-count conversions follow the era decomposition of Howard Hinnant's
// chrono-compatible date algorithms: days are grouped into 400-year eras of
// exactly 146097 days, with years shifted to start in March so leap days
// land at the end of a year-of-era. All intermediate arithmetic is int64;
// day counts from the epoch can exceed 2^31.

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400

	daysPerEra = 146097 // 400 Gregorian years

	// Days from 0000-03-01 to 1970-01-01.
	epochDays = 719468
)

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4,
// and not by 100 unless also by 400.
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if month is outside 1-12.
func DaysInMonth(year int32, month uint8) uint8 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ToUTC decomposes an instant into UTC civil fields.
//
// The whole-second count is split into a day number and a second-of-day
// (both non-negative remainders, so pre-epoch instants decompose correctly),
// the day number is mapped through the Gregorian calendar, and the
// nanosecond component is carried through unchanged. Never fails: every
// representable Instant has a decomposition.
//
// Note: Year is truncated to int32. Instants more than ~2 billion years from
// the epoch wrap the year field; every date the calendar can name fits.
func ToUTC(i Instant) DateTime {
	days := floorDiv(i.Seconds, secondsPerDay)
	secOfDay := i.Seconds - days*secondsPerDay

	year, month, day := civilFromDays(days)

	return DateTime{
		Year:       int32(year),
		Month:      uint8(month),
		Day:        uint8(day),
		Hour:       uint8(secOfDay / secondsPerHour),
		Minute:     uint8(secOfDay % secondsPerHour / secondsPerMinute),
		Second:     uint8(secOfDay % secondsPerMinute),
		Nanosecond: i.Nanoseconds,
	}
}

// FromUTC interprets civil fields as UTC and returns the corresponding
// instant. It is the exact mathematical inverse of ToUTC over valid fields.
//
// Out-of-range fields are rejected with an INVALID_FIELD error naming the
// offending field; there is no carry-over normalization. In particular,
// February 29 of a non-leap year is an error, never silently March 1.
func FromUTC(dt DateTime) (Instant, error) {
	if err := validateFields(dt); err != nil {
		return Instant{}, err
	}

	days := daysFromCivil(int64(dt.Year), int64(dt.Month), int64(dt.Day))
	seconds := days*secondsPerDay +
		int64(dt.Hour)*secondsPerHour +
		int64(dt.Minute)*secondsPerMinute +
		int64(dt.Second)

	return Instant{Seconds: seconds, Nanoseconds: dt.Nanosecond}, nil
}

// validateFields enforces the strict-rejection policy for FromUTC.
func validateFields(dt DateTime) error {
	if dt.Month < 1 || dt.Month > 12 {
		return NewInvalidFieldError("month", int64(dt.Month), "month must be in 1..12")
	}
	if monthDays := DaysInMonth(dt.Year, dt.Month); dt.Day < 1 || dt.Day > monthDays {
		return NewInvalidFieldError("day", int64(dt.Day),
			fmt.Sprintf("day must be in 1..%d for %d-%02d", monthDays, dt.Year, dt.Month))
	}
	if dt.Hour > 23 {
		return NewInvalidFieldError("hour", int64(dt.Hour), "hour must be in 0..23")
	}
	if dt.Minute > 59 {
		return NewInvalidFieldError("minute", int64(dt.Minute), "minute must be in 0..59")
	}
	if dt.Second > 59 {
		return NewInvalidFieldError("second", int64(dt.Second), "second must be in 0..59")
	}
	if dt.Nanosecond > MaxNanoseconds {
		return NewInvalidFieldError("nanosecond", int64(dt.Nanosecond),
			"nanosecond must be in 0..999999999")
	}
	return nil
}

// civilFromDays maps a day count relative to 1970-01-01 to (year, month, day).
func civilFromDays(z int64) (year, month, day int64) {
	z += epochDays
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra                                    // day of era [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // year of era [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)                     // day of March-based year [0, 365]
	mp := (5*doy + 2) / 153                                      // March-based month [0, 11]
	day = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		month = mp + 3
	} else {
		month = mp - 9
	}
	year = yoe + era*400
	if month <= 2 {
		year++
	}
	return year, month, day
}

// daysFromCivil maps (year, month, day) to a day count relative to 1970-01-01.
func daysFromCivil(year, month, day int64) int64 {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, 400)
	yoe := year - era*400 // [0, 399]
	var mp int64
	if month > 2 {
		mp = month - 3
	} else {
		mp = month + 9
	}
	doy := (153*mp+2)/5 + day - 1              // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy     // [0, 146096]
	return era*daysPerEra + doe - epochDays
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
