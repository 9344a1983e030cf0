package cmd

import (
	"github.com/spf13/cobra"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

var diffFormatFlag string
var diffTestCasesFlag bool

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff LEFT_RUN_ID RIGHT_RUN_ID",
		Short: "Diff the step trees of two runs",
		Long: `Diff the step trees of two runs, one hunk per test case: test cases only in
the left run first, then test cases only in the right run, then matched pairs.
With --test-cases the ids name two test cases instead of two runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			ui, err := newUI(cmd, diffFormatFlag)
			if err != nil {
				return err
			}

			return withServices(func() error {
				var diff m.RunDiff

				if diffTestCasesFlag {
					diff, err = comparator.CompareTestCases(cmd.Context(), ids[0], ids[1])
				} else {
					diff, err = comparator.CompareRuns(cmd.Context(), ids[0], ids[1])
				}

				if err != nil {
					return err
				}

				return ui.DisplayRunDiff(cmd.Context(), diff)
			})
		},
	}

	cmd.Flags().StringVarP(&diffFormatFlag, formatFlagName, "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&diffTestCasesFlag, "test-cases", false, "compare two test cases instead of two runs")

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
