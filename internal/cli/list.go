package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deadlyengineer/seqquery/internal/catalogue"
)

// DemoInfo describes a demo in list output.
type DemoInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Long: `List the available demos in the order "seqquery run" runs them.

Example:
  seqquery list
  seqquery list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runList(opts *RootOptions, w io.Writer) error {
	demos := catalogue.New(nil, opts.Logger()).Demos()

	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		for _, demo := range demos {
			if err := enc.Encode(DemoInfo{Name: demo.Name, Description: demo.Description}); err != nil {
				return fmt.Errorf("encode demo: %w", err)
			}
		}

		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, demo := range demos {
		fmt.Fprintf(tw, "%s\t%s\n", demo.Name, demo.Description)
	}

	return tw.Flush()
}
