package civil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanial/chronos/internal/civil"
)

func TestSystemClock_Now(t *testing.T) {
	before := time.Now().Unix()
	i, err := civil.SystemClock{}.Now()
	after := time.Now().Unix()

	require.NoError(t, err)
	assert.GreaterOrEqual(t, i.Seconds, before)
	assert.LessOrEqual(t, i.Seconds, after)
	assert.LessOrEqual(t, i.Nanoseconds, uint32(civil.MaxNanoseconds))
}

func TestSystemClock_NoPriorInitialization(t *testing.T) {
	// Fresh zero values are usable; the clock carries no state across calls.
	var c civil.SystemClock
	a, err := c.Now()
	require.NoError(t, err)
	b, err := civil.SystemClock{}.Now()
	require.NoError(t, err)
	assert.LessOrEqual(t, a.Seconds, b.Seconds)
}
