package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nathanial/chronos/internal/civil"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	Zone string
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode <seconds> [nanoseconds]",
		Short: "Convert an instant to civil fields",
		Long: `Convert an epoch instant to civil calendar fields.

The instant is given as whole seconds since the Unix epoch (negative for
instants before 1970) and an optional nanosecond component. UTC
decomposition is pure and never fails; local decomposition delegates to the
host's zone rules.

Example:
  chronos decode 0
  chronos decode -1 999999999
  chronos decode 1709164800 --zone local`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Zone, "zone", "utc", "decomposition zone (utc|local)")

	return cmd
}

func runDecode(opts *DecodeOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	seconds, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return outputArgumentError(formatter, fmt.Sprintf("seconds %q must be a 64-bit integer", args[0]))
	}

	var nanos uint64
	if len(args) == 2 {
		nanos, err = strconv.ParseUint(args[1], 10, 32)
		if err != nil || nanos > civil.MaxNanoseconds {
			return outputArgumentError(formatter,
				fmt.Sprintf("nanoseconds %q must be an integer in 0..%d", args[1], uint32(civil.MaxNanoseconds)))
		}
	}

	var resolver civil.Resolver
	switch opts.Zone {
	case "utc":
		resolver = civil.UTCResolver{}
	case "local":
		resolver = opts.Local
	default:
		return outputArgumentError(formatter, fmt.Sprintf("zone %q must be utc or local", opts.Zone))
	}

	instant := civil.Instant{Seconds: seconds, Nanoseconds: uint32(nanos)}
	dt, err := resolver.Resolve(instant)
	if err != nil {
		return outputConversionError(formatter, err)
	}

	result := newFieldsResult(opts.Zone, dt)
	if err := formatter.Success(result); err != nil {
		return err
	}

	recordConversion(cmd.Context(), opts.RootOptions, "decode."+opts.Zone, newInstantResult(instant), result)
	return nil
}

// outputArgumentError reports a malformed command line (exit code 2).
func outputArgumentError(formatter *OutputFormatter, message string) error {
	_ = formatter.Error(ErrCodeBadArgument, message, nil)
	return NewExitError(ExitCommandError, message)
}
