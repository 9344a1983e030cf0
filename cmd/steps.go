package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"shotdiff.dev/pkg/shotdiff/internal/domain"
)

var stepsFormatFlag string
var stepsOutFlag string

// stepsCmd represents the steps command.
var stepsCmd = newStepsCmd()

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps LEFT_STEP_ID RIGHT_STEP_ID",
		Short: "Compare the screenshots of two steps",
		Long: `Compare the screenshots of two steps pixel by pixel. Ignore areas of both
owning test cases are applied. With --out the diff image is written as PNG.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			ui, err := newUI(cmd, stepsFormatFlag)
			if err != nil {
				return err
			}

			return withServices(func() error {
				result, err := comparator.CompareSteps(cmd.Context(), ids[0], ids[1])
				if err != nil {
					return err
				}

				if stepsOutFlag != "" {
					if err := writeDiffImage(stepsOutFlag, result.DiffDataURI); err != nil {
						return err
					}
				}

				return ui.DisplayStepComparison(cmd.Context(), ids[0], ids[1], result)
			})
		},
	}

	cmd.Flags().StringVarP(&stepsFormatFlag, formatFlagName, "f", "text", "output format: text, json or yaml")
	cmd.Flags().StringVarP(&stepsOutFlag, "out", "o", "", "write the diff image to this PNG file")

	return cmd
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func writeDiffImage(path, dataURI string) error {
	img, err := domain.DecodeDataURI(dataURI)
	if err != nil {
		return fmt.Errorf("failed to decode diff image: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := domain.WritePNG(file, img); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
