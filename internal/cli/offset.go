package cli

import (
	"github.com/spf13/cobra"

	"github.com/nathanial/chronos/internal/civil"
)

// NewOffsetCommand creates the offset command.
func NewOffsetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "offset",
		Short: "Compute the current local-UTC offset",
		Long: `Compute the seconds to add to the current UTC instant to obtain the
current local instant, under whatever daylight-saving state applies right
now. Positive east of UTC, negative west, zero at UTC.

Example:
  chronos offset`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOffset(rootOpts, cmd)
		},
	}
}

func runOffset(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	offset, err := civil.LocalOffset(opts.Clock, opts.Local)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	result := OffsetResult{OffsetSeconds: int32(offset)}
	if err := formatter.Success(result); err != nil {
		return err
	}

	recordConversion(cmd.Context(), opts, "offset", struct{}{}, result)
	return nil
}
