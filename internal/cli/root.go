package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathanial/chronos/internal/civil"
	"github.com/nathanial/chronos/internal/config"
)

// RootOptions holds global flags and injectable collaborators for all
// commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"; empty means "take the config default"
	ConfigPath string

	// Config is the loaded configuration. Populated before any command runs.
	Config *config.Config

	// Clock allows overriding the platform clock (for testing).
	// If nil, defaults to civil.SystemClock.
	Clock civil.Clock

	// Local allows overriding local-zone resolution (for testing or for
	// pinning a zone). If nil, defaults to civil.LocalResolver.
	Local civil.Resolver
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the chronos CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around caller-supplied
// options. Tests use this to inject a fixed clock or zone.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chronos",
		Short: "Chronos - Unix time / civil time conversion",
		Long: `Convert between Unix-epoch instants and civil calendar fields,
in UTC and the host's local zone, and compute the local-UTC offset.

All input and output is discrete numeric fields; chronos neither parses nor
formats timestamp strings.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupRoot(opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")

	// Add subcommands
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewOffsetCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// setupRoot resolves config, defaults, and logging before a command runs.
func setupRoot(opts *RootOptions) error {
	if opts.Clock == nil {
		opts.Clock = civil.SystemClock{}
	}
	if opts.Local == nil {
		opts.Local = civil.LocalResolver{}
	}

	if opts.Config == nil {
		cfg, err := loadConfig(opts.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading config", err)
		}
		opts.Config = cfg
	}

	if opts.Format == "" {
		opts.Format = opts.Config.Format
	}
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	return nil
}

// loadConfig loads the config file, falling back to defaults when neither
// an explicit path nor a resolvable user config dir exists.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			// No user config dir (e.g. bare container). Defaults apply.
			return config.Default(), nil
		}
		path = defaultPath
	}
	return config.Load(path)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
