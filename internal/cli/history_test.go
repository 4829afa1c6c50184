package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanial/chronos/internal/config"
)

// historyOptions builds options with recording enabled against a temp
// database.
func historyOptions(t *testing.T) (*RootOptions, string) {
	t.Helper()
	db := filepath.Join(t.TempDir(), "history.db")
	cfg := config.Default()
	cfg.History.Enabled = true
	cfg.History.Database = db
	return &RootOptions{Config: cfg}, db
}

func TestHistory_RecordAndList(t *testing.T) {
	opts, db := historyOptions(t)

	_, err := execute(t, opts, "encode", "--year", "2024", "--month", "2", "--day", "29")
	require.NoError(t, err)
	_, err = execute(t, opts, "decode", "0")
	require.NoError(t, err)

	out, err := execute(t, opts, "history", "--db", db)
	require.NoError(t, err)

	// Newest first.
	assert.Contains(t, out, "#2  decode.utc")
	assert.Contains(t, out, "#1  encode")
	assert.Contains(t, out, `"seconds":1709164800`)
}

func TestHistory_ListJSON(t *testing.T) {
	opts, db := historyOptions(t)

	_, err := execute(t, opts, "offset")
	require.NoError(t, err)

	out, err := execute(t, opts, "history", "--db", db, "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)

	records, ok := dataField(t, resp, "records").([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	rec, ok := records[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "offset", rec["op"])
	assert.Equal(t, float64(1), rec["seq"])
}

func TestHistory_Limit(t *testing.T) {
	opts, db := historyOptions(t)

	for i := 0; i < 3; i++ {
		_, err := execute(t, opts, "decode", "0")
		require.NoError(t, err)
	}

	out, err := execute(t, opts, "history", "--db", db, "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "#2")
	assert.NotContains(t, out, "#1")
}

func TestHistory_MissingDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "absent.db")
	opts := &RootOptions{Config: config.Default()}

	_, err := execute(t, opts, "history", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHistory_DisabledRecordingLeavesNoDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	opts := &RootOptions{Config: config.Default()}

	_, err := execute(t, opts, "decode", "0")
	require.NoError(t, err)

	_, err = execute(t, opts, "history", "--db", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
