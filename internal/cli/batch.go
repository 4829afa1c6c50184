package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nathanial/chronos/internal/batch"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Check bool
}

// BatchReport is the JSON payload for a batch run.
type BatchReport struct {
	Jobs    int                     `json:"jobs"`
	Failed  int                     `json:"failed"`
	Results []map[string]any        `json:"results,omitempty"`
	Errors  []batch.ValidationError `json:"errors,omitempty"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <file-or-dir>",
		Short: "Run conversion jobs declared in CUE files",
		Long: `Load conversion jobs from a CUE file or a directory of CUE files,
validate them, and run them in name order.

Example:
  chronos batch jobs.cue
  chronos batch ./jobs --check
  chronos batch jobs.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "validate jobs without running them")

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	loadResult, loadErrors := LoadJobs(path, LoadModeCollectAll)
	if loadResult == nil && len(loadErrors) > 0 {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, loadErr.Error())
		}
		_ = formatter.Error(ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}
	if len(loadErrors) > 0 {
		for _, err := range loadErrors {
			_ = formatter.Error(ErrCodeCompileFailed, err.Error(), nil)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("job loading failed with %d error(s)", len(loadErrors)))
	}

	formatter.VerboseLog("Loaded %d job(s) from %d CUE file(s)", len(loadResult.Jobs), loadResult.FileCount)

	if validationErrs := batch.ValidateAll(loadResult.Jobs); len(validationErrs) > 0 {
		return outputBatchValidationErrors(formatter, validationErrs)
	}

	if opts.Check {
		if opts.Format == "json" {
			return formatter.Success(BatchReport{Jobs: len(loadResult.Jobs)})
		}
		fmt.Fprintf(formatter.Writer, "✓ %d job(s) valid\n", len(loadResult.Jobs))
		return nil
	}

	results := batch.Run(loadResult.Jobs, opts.Local)
	return outputBatchResults(formatter, results)
}

// outputBatchValidationErrors reports range errors found before execution.
func outputBatchValidationErrors(formatter *OutputFormatter, errs []batch.ValidationError) error {
	if formatter.Format == "json" {
		_ = formatter.Error(errs[0].Code, errs[0].Message, BatchReport{Errors: errs})
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		fmt.Fprintf(formatter.Writer, "  %s\n", err.Error())
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

// outputBatchResults prints per-job outcomes. Any failed job fails the
// batch (exit code 1) after all results have been printed.
func outputBatchResults(formatter *OutputFormatter, results []batch.Result) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	if formatter.Format == "json" {
		report := BatchReport{Jobs: len(results), Failed: failed}
		for _, r := range results {
			report.Results = append(report.Results, resultMap(r))
		}
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprintln(formatter.Writer, formatResultLine(r))
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d job(s) failed", failed, len(results)))
	}
	return nil
}

// resultMap flattens a batch result for JSON output. Reuses the canonical
// layout so the JSON report and golden fixtures carry the same keys.
func resultMap(r batch.Result) map[string]any {
	m := map[string]any{
		"job":    r.Job.Name,
		"op":     string(r.Job.Op),
		"status": "ok",
	}
	switch {
	case r.Err != nil:
		m["status"] = "error"
		m["error"] = r.Err.Error()
	case r.DateTime != nil:
		m["year"] = r.DateTime.Year
		m["month"] = r.DateTime.Month
		m["day"] = r.DateTime.Day
		m["hour"] = r.DateTime.Hour
		m["minute"] = r.DateTime.Minute
		m["second"] = r.DateTime.Second
		m["nanosecond"] = r.DateTime.Nanosecond
	case r.Instant != nil:
		m["seconds"] = r.Instant.Seconds
		m["nanoseconds"] = r.Instant.Nanoseconds
	}
	return m
}

// formatResultLine renders one job outcome for text output.
func formatResultLine(r batch.Result) string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("✗ %s: %v", r.Job.Name, r.Err)
	case r.DateTime != nil:
		return fmt.Sprintf("✓ %s: %d-%02d-%02d %02d:%02d:%02d.%09d",
			r.Job.Name,
			r.DateTime.Year, r.DateTime.Month, r.DateTime.Day,
			r.DateTime.Hour, r.DateTime.Minute, r.DateTime.Second, r.DateTime.Nanosecond)
	case r.Instant != nil:
		return fmt.Sprintf("✓ %s: seconds=%d nanoseconds=%d",
			r.Job.Name, r.Instant.Seconds, r.Instant.Nanoseconds)
	default:
		return fmt.Sprintf("? %s: no result", r.Job.Name)
	}
}
