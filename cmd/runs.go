package cmd

import (
	"github.com/spf13/cobra"
)

var runsFormatFlag string

// runsCmd represents the runs command.
var runsCmd = newRunsCmd()

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui, err := newUI(cmd, runsFormatFlag)
			if err != nil {
				return err
			}

			return withServices(func() error {
				runs, err := store.ListRuns(cmd.Context())
				if err != nil {
					return err
				}

				return ui.DisplayRuns(cmd.Context(), runs)
			})
		},
	}

	cmd.Flags().StringVarP(&runsFormatFlag, formatFlagName, "f", "text", "output format: text, json or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
