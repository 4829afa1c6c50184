package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_AssignsIdentityAndSeq(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.Append(ctx, "decode.utc", `{"seconds":0}`, `{"year":1970}`)
	require.NoError(t, err)

	assert.Equal(t, int64(1), rec.Seq)
	assert.Equal(t, "decode.utc", rec.Op)
	assert.NotZero(t, rec.RecordedUnix)

	parsed, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestAppend_SeqMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 10; i++ {
		rec, err := s.Append(ctx, "now", "{}", `{"seconds":1}`)
		require.NoError(t, err)
		assert.Equal(t, last+1, rec.Seq)
		last = rec.Seq
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
}

func TestAppend_SeqSurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/history.db"
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Append(ctx, "offset", "{}", `{"offset_seconds":3600}`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	rec, err := s.Append(ctx, "offset", "{}", `{"offset_seconds":3600}`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.Seq)
}
