package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathanial/chronos/internal/config"
	"github.com/nathanial/chronos/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// HistoryReport is the JSON payload for a history listing.
type HistoryReport struct {
	Records []store.Record `json:"records"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions",
		Long: `List recent entries from the conversion history log, newest first.

Recording is enabled in the config file (history.enabled); the log is a
SQLite database. Reads never create the database.

Example:
  chronos history
  chronos history --limit 5 --db ./history.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to history database (defaults to config)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum records to list")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	dbPath, err := resolveHistoryPath(opts)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		msg := fmt.Sprintf("history database not found: %s", dbPath)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening history database", err)
	}
	defer st.Close()

	records, err := st.ListRecent(cmd.Context(), opts.Limit)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading history", err)
	}

	if opts.Format == "json" {
		return formatter.Success(HistoryReport{Records: records})
	}

	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "history is empty")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(formatter.Writer, "#%d  %-12s  %s -> %s\n", rec.Seq, rec.Op, rec.Input, rec.Output)
	}
	return nil
}

// resolveHistoryPath picks the database path: flag, then config, then the
// conventional default location.
func resolveHistoryPath(opts *HistoryOptions) (string, error) {
	if opts.Database != "" {
		return opts.Database, nil
	}
	if opts.Config != nil && opts.Config.History.Database != "" {
		return opts.Config.History.Database, nil
	}
	return config.DefaultHistoryPath()
}
