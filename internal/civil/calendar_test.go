package civil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTC_Epoch(t *testing.T) {
	dt := ToUTC(Instant{Seconds: 0, Nanoseconds: 0})
	assert.Equal(t, DateTime{Year: 1970, Month: 1, Day: 1}, dt)
}

func TestFromUTC_Epoch(t *testing.T) {
	i, err := FromUTC(DateTime{Year: 1970, Month: 1, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, Instant{Seconds: 0, Nanoseconds: 0}, i)
}

func TestToUTC_KnownInstants(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    DateTime
	}{
		{"last second of epoch day", 86399, DateTime{Year: 1970, Month: 1, Day: 1, Hour: 23, Minute: 59, Second: 59}},
		{"second day", 86400, DateTime{Year: 1970, Month: 1, Day: 2}},
		{"one second before epoch", -1, DateTime{Year: 1969, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}},
		{"one day before epoch", -86400, DateTime{Year: 1969, Month: 12, Day: 31}},
		{"leap day 2000 (divisible by 400)", 951782400, DateTime{Year: 2000, Month: 2, Day: 29}},
		{"leap day 2024", 1709164800, DateTime{Year: 2024, Month: 2, Day: 29}},
		{"1900-01-01 (pre-epoch, non-leap century)", -2208988800, DateTime{Year: 1900, Month: 1, Day: 1}},
		{"2100-02-28 end of day (2100 is not leap)", 4107542399, DateTime{Year: 2100, Month: 2, Day: 28, Hour: 23, Minute: 59, Second: 59}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToUTC(Instant{Seconds: tt.seconds})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromUTC_PreEpoch(t *testing.T) {
	i, err := FromUTC(DateTime{Year: 1969, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59})
	require.NoError(t, err)
	assert.Equal(t, Instant{Seconds: -1, Nanoseconds: 0}, i)
}

func TestFromUTC_LeapDay(t *testing.T) {
	i, err := FromUTC(DateTime{Year: 2024, Month: 2, Day: 29})
	require.NoError(t, err)
	assert.Equal(t, int64(1709164800), i.Seconds)
}

// Round trip across roughly 1868..2071 with varying nanoseconds.
// The step is odd and not aligned to any calendar unit so second-of-day,
// day-of-month, and month all churn.
func TestRoundTrip_WideRange(t *testing.T) {
	const (
		lo   = int64(-3_200_000_000)
		hi   = int64(3_200_000_000)
		step = int64(7_919_333)
	)

	n := uint32(0)
	for sec := lo; sec <= hi; sec += step {
		in := Instant{Seconds: sec, Nanoseconds: n}
		dt := ToUTC(in)
		out, err := FromUTC(dt)
		require.NoError(t, err, "sec=%d", sec)
		require.Equal(t, in, out, "sec=%d decomposed to %v", sec, dt)

		n = (n + 333_333_383) % (MaxNanoseconds + 1)
	}
}

func TestRoundTrip_FarInstants(t *testing.T) {
	for _, sec := range []int64{
		-1_000_000_000_000, // around year -29719
		1_000_000_000_000,  // around year 33658
		-62_135_596_800,    // 0001-01-01T00:00:00Z
		253_402_300_799,    // 9999-12-31T23:59:59Z
	} {
		in := Instant{Seconds: sec, Nanoseconds: 123}
		out, err := FromUTC(ToUTC(in))
		require.NoError(t, err, "sec=%d", sec)
		assert.Equal(t, in, out)
	}
}

func TestFromUTC_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name      string
		dt        DateTime
		wantField string
	}{
		{"month zero", DateTime{Year: 2024, Month: 0, Day: 1}, "month"},
		{"month thirteen", DateTime{Year: 2024, Month: 13, Day: 1}, "month"},
		{"day zero", DateTime{Year: 2024, Month: 1, Day: 0}, "day"},
		{"day thirty-two", DateTime{Year: 2024, Month: 1, Day: 32}, "day"},
		{"february 29 of non-leap year", DateTime{Year: 2023, Month: 2, Day: 29}, "day"},
		{"february 30 of leap year", DateTime{Year: 2024, Month: 2, Day: 30}, "day"},
		{"april 31", DateTime{Year: 2024, Month: 4, Day: 31}, "day"},
		{"hour 24", DateTime{Year: 2024, Month: 1, Day: 1, Hour: 24}, "hour"},
		{"minute 60", DateTime{Year: 2024, Month: 1, Day: 1, Minute: 60}, "minute"},
		{"second 60", DateTime{Year: 2024, Month: 1, Day: 1, Second: 60}, "second"},
		{"nanosecond overflow", DateTime{Year: 2024, Month: 1, Day: 1, Nanosecond: 1_000_000_000}, "nanosecond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromUTC(tt.dt)
			require.Error(t, err)
			assert.True(t, IsInvalidField(err), "expected INVALID_FIELD, got %v", err)

			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.wantField, ce.Field)
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int32
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100, not 400
		{1600, true},
		{2100, false},
		{4, true},
		{1, false},
		{0, true}, // proleptic year 0 is divisible by 400
		{-1, false},
		{-4, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, uint8(31), DaysInMonth(2024, 1))
	assert.Equal(t, uint8(29), DaysInMonth(2024, 2))
	assert.Equal(t, uint8(28), DaysInMonth(2023, 2))
	assert.Equal(t, uint8(28), DaysInMonth(1900, 2))
	assert.Equal(t, uint8(30), DaysInMonth(2024, 4))
	assert.Equal(t, uint8(31), DaysInMonth(2024, 12))
	assert.Equal(t, uint8(0), DaysInMonth(2024, 0))
	assert.Equal(t, uint8(0), DaysInMonth(2024, 13))
}

func TestToUTC_NanosecondPreserved(t *testing.T) {
	for _, sec := range []int64{0, -1, 86400, -2208988800, 1709164800} {
		for _, n := range []uint32{0, 1, 500_000_000, MaxNanoseconds} {
			dt := ToUTC(Instant{Seconds: sec, Nanoseconds: n})
			assert.Equal(t, n, dt.Nanosecond, "sec=%d n=%d", sec, n)
		}
	}
}

// One-second steps change exactly one of second/minute/hour by one, or
// cascade through a unit boundary, rolling lower units back to zero.
func TestToUTC_SecondStepBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		want    DateTime
	}{
		{"mid-minute step", 30, DateTime{Year: 1970, Month: 1, Day: 1, Second: 30}},
		{"minute rollover", 60, DateTime{Year: 1970, Month: 1, Day: 1, Minute: 1}},
		{"hour rollover", 3600, DateTime{Year: 1970, Month: 1, Day: 1, Hour: 1}},
		{"day rollover", 86400, DateTime{Year: 1970, Month: 1, Day: 2}},
		{"month rollover", 2678400, DateTime{Year: 1970, Month: 2, Day: 1}},
		{"year rollover", 31536000, DateTime{Year: 1971, Month: 1, Day: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ToUTC(Instant{Seconds: tt.seconds - 1})
			after := ToUTC(Instant{Seconds: tt.seconds})

			assert.Equal(t, tt.want, after)

			// The step back must sit at xx:xx:59 or earlier within the
			// previous unit, never skip a representable second.
			prev, err := FromUTC(before)
			require.NoError(t, err)
			assert.Equal(t, tt.seconds-1, prev.Seconds)
		})
	}

	// Exhaustive single-unit check across a slice of an ordinary day:
	// when no minute boundary is crossed, only the second field moves.
	base := int64(1709164800) // 2024-02-29T00:00:00Z
	for s := int64(0); s < 59; s++ {
		a := ToUTC(Instant{Seconds: base + s})
		b := ToUTC(Instant{Seconds: base + s + 1})
		assert.Equal(t, a.Second+1, b.Second)
		assert.Equal(t, a.Minute, b.Minute)
		assert.Equal(t, a.Hour, b.Hour)
		assert.Equal(t, a.Day, b.Day)
	}
}
