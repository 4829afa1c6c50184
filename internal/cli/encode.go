package cli

import (
	"github.com/spf13/cobra"

	"github.com/nathanial/chronos/internal/civil"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Year   int32
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
	Nanos  uint32
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Convert UTC civil fields to an instant",
		Long: `Convert UTC civil calendar fields to an epoch instant.

Fields are strict: out-of-range values (month 13, day 32, February 29 of a
non-leap year) are rejected, never normalized.

Example:
  chronos encode --year 1970 --month 1 --day 1
  chronos encode --year 2024 --month 2 --day 29 --hour 12 --nanos 500000000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, cmd)
		},
	}

	cmd.Flags().Int32Var(&opts.Year, "year", 0, "year (proleptic Gregorian, may be negative)")
	cmd.Flags().Uint8Var(&opts.Month, "month", 0, "month (1-12)")
	cmd.Flags().Uint8Var(&opts.Day, "day", 0, "day of month")
	cmd.Flags().Uint8Var(&opts.Hour, "hour", 0, "hour (0-23)")
	cmd.Flags().Uint8Var(&opts.Minute, "minute", 0, "minute (0-59)")
	cmd.Flags().Uint8Var(&opts.Second, "second", 0, "second (0-59)")
	cmd.Flags().Uint32Var(&opts.Nanos, "nanos", 0, "nanosecond component")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func runEncode(opts *EncodeOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	fields := civil.DateTime{
		Year:       opts.Year,
		Month:      opts.Month,
		Day:        opts.Day,
		Hour:       opts.Hour,
		Minute:     opts.Minute,
		Second:     opts.Second,
		Nanosecond: opts.Nanos,
	}

	instant, err := civil.FromUTC(fields)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	result := newInstantResult(instant)
	if err := formatter.Success(result); err != nil {
		return err
	}

	recordConversion(cmd.Context(), opts.RootOptions, "encode", newFieldsResult("utc", fields), result)
	return nil
}
