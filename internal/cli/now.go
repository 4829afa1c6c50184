package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nathanial/chronos/internal/civil"
)

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Read the current instant",
		Long: `Read the platform real-time clock and print the current instant as
whole seconds since the Unix epoch plus a nanosecond component.

Example:
  chronos now
  chronos now --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(rootOpts, cmd)
		},
	}
}

func runNow(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	now, err := opts.Clock.Now()
	if err != nil {
		return outputConversionError(formatter, err)
	}

	result := newInstantResult(now)
	if err := formatter.Success(result); err != nil {
		return err
	}

	recordConversion(cmd.Context(), opts, "now", struct{}{}, result)
	return nil
}

// outputConversionError reports a conversion-layer failure and maps it to
// an exit code: caller mistakes (INVALID_FIELD) and environment failures
// both exit 1; the command itself was well-formed.
func outputConversionError(formatter *OutputFormatter, err error) error {
	code := string(civil.ErrCodeConversionFailure)
	var ce *civil.Error
	if errors.As(err, &ce) {
		code = string(ce.Code)
	}
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, code, err)
}
