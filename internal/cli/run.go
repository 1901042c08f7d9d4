package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/deadlyengineer/seqquery/internal/catalogue"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run demos",
		Long: `Run the named demos in the given order, or every demo if none is named.

Example:
  seqquery run
  seqquery run where orderby --format json
  seqquery run take --data ./fixture.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemos(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDemos(opts *RootOptions, names []string, cmd *cobra.Command) error {
	logger := opts.Logger()

	data, err := loadFixture(opts.Data)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load fixture", err)
	}

	logger.Debug("fixture loaded", "path", opts.Data)

	results, runErr := catalogue.New(data, logger).Run(cmd.Context(), names...)

	if err := catalogue.Write(cmd.OutOrStdout(), catalogue.Format(opts.Format), results); err != nil {
		return WrapExitError(ExitFailure, "failed to write results", err)
	}

	switch {
	case runErr == nil:
		return nil
	case errors.Is(runErr, catalogue.ErrUnknownDemo):
		return WrapExitError(ExitCommandError, "failed to run demos", runErr)
	default:
		return WrapExitError(ExitFailure, "failed to run demos", runErr)
	}
}

func loadFixture(path string) (*catalogue.Fixture, error) {
	if path == "" {
		return catalogue.DefaultFixture()
	}

	return catalogue.LoadFixtureFile(path)
}
