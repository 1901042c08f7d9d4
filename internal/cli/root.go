// Package cli implements the seqquery command line: listing and running the operator demos.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "SEQQUERY_"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Data    string // fixture file, empty for the embedded fixture
	Log     LogConfig

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the seqquery CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "seqquery",
		Short: "seqquery - deferred queries over in-memory sequences",
		Long: `Run demonstrations of the seqquery operators.

Each demo runs a small query over fixture data and prints its results.
Flags may also be set through environment variables prefixed with SEQQUERY_,
for example SEQQUERY_FORMAT=json or SEQQUERY_LOG_LEVEL=DEBUG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return WrapExitError(ExitCommandError, "failed to load configuration", err)
			}

			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Log, opts.Verbose)

			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Data, "data", "", "path to a YAML fixture replacing the embedded one")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// Logger returns the logger configured for the running command.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return discardLogger()
	}

	return o.logger
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}

	return false
}
