package cli

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nathanial/chronos/internal/config"
	"github.com/nathanial/chronos/internal/store"
)

// recordConversion appends a conversion to the history log when recording
// is enabled.
//
// Recording is best-effort: a failure to append is logged and swallowed so
// a broken history database never makes a working conversion fail. The
// conversion result has already been produced and printed by the time this
// runs.
func recordConversion(ctx context.Context, opts *RootOptions, op string, input, output any) {
	if opts.Config == nil || !opts.Config.History.Enabled {
		return
	}

	dbPath := opts.Config.History.Database
	if dbPath == "" {
		defaultPath, err := config.DefaultHistoryPath()
		if err != nil {
			slog.Warn("history: no database path available", "error", err)
			return
		}
		dbPath = defaultPath
	}

	inJSON, err := json.Marshal(input)
	if err != nil {
		slog.Warn("history: marshaling input", "error", err)
		return
	}
	outJSON, err := json.Marshal(output)
	if err != nil {
		slog.Warn("history: marshaling output", "error", err)
		return
	}

	st, err := store.Open(dbPath)
	if err != nil {
		slog.Warn("history: opening database", "path", dbPath, "error", err)
		return
	}
	defer st.Close()

	rec, err := st.Append(ctx, op, string(inJSON), string(outJSON))
	if err != nil {
		slog.Warn("history: appending record", "error", err)
		return
	}
	slog.Debug("history: recorded conversion", "op", op, "seq", rec.Seq, "id", rec.ID)
}
