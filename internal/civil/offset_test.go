package civil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanial/chronos/internal/civil"
	"github.com/nathanial/chronos/internal/testutil"
)

func TestLocalOffset_FixedZones(t *testing.T) {
	tests := []struct {
		name string
		zone civil.Offset
	}{
		{"east of UTC", 3600},
		{"far east half-hour", 19800},
		{"west of UTC", -18000},
		{"UTC itself", 0},
	}

	clock := testutil.NewFixedClock(civil.Instant{Seconds: 1709164800})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := civil.LocalOffset(clock, civil.FixedResolver{Offset: tt.zone})
			require.NoError(t, err)
			assert.Equal(t, tt.zone, got)

			switch {
			case tt.zone > 0:
				assert.Positive(t, got)
			case tt.zone < 0:
				assert.Negative(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

// A zone change between calls is expected behavior, not a race: the offset
// reflects whatever rules apply at the instant of the call.
func TestLocalOffset_ReflectsCurrentRules(t *testing.T) {
	clock := testutil.NewFixedClock(civil.Instant{Seconds: 0})

	got, err := civil.LocalOffset(clock, civil.FixedResolver{Offset: 3600})
	require.NoError(t, err)
	assert.Equal(t, civil.Offset(3600), got)

	got, err = civil.LocalOffset(clock, civil.FixedResolver{Offset: 7200})
	require.NoError(t, err)
	assert.Equal(t, civil.Offset(7200), got)
}

func TestLocalOffset_MatchesPlatformZone(t *testing.T) {
	sec := int64(1709164800)
	clock := testutil.NewFixedClock(civil.Instant{Seconds: sec})

	got, err := civil.LocalOffset(clock, civil.LocalResolver{})
	require.NoError(t, err)

	_, want := time.Unix(sec, 0).In(time.Local).Zone()
	assert.Equal(t, civil.Offset(want), got)
}

func TestLocalOffset_ClockUnavailable(t *testing.T) {
	_, err := civil.LocalOffset(testutil.FailingClock{}, civil.FixedResolver{})
	require.Error(t, err)
	assert.True(t, civil.IsClockUnavailable(err))
}

func TestLocalOffset_DropsDSTShift(t *testing.T) {
	// Crossing a fixed-zone boundary in the clock changes nothing for a
	// fixed resolver; the offset only moves when the zone rules do.
	clock := testutil.NewFixedClock(civil.Instant{Seconds: 1709164800})
	before, err := civil.LocalOffset(clock, civil.FixedResolver{Offset: -28800})
	require.NoError(t, err)

	clock.Advance(90 * 86400)
	after, err := civil.LocalOffset(clock, civil.FixedResolver{Offset: -28800})
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestLocalOffsetNow_AgreesWithPlatform(t *testing.T) {
	got, err := civil.LocalOffsetNow()
	require.NoError(t, err)

	_, want := time.Now().Zone()
	assert.Equal(t, civil.Offset(want), got)
}
