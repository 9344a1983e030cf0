package cmd

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

const parentFlagName = "parent"

var recordRunFlag string
var recordTagsFlag []string
var recordCaseFlag string
var recordStepFlag string
var recordParentFlag int64
var recordIgnoreFlag []string

// recordCmd represents the record command.
var recordCmd = newRecordCmd()

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record IMAGE_FILE",
		Short: "Record a screenshot as a step",
		Long: `Record an image file as a step of a test case. The run and the test case are
created on first use; ignore areas are added to the test case.

Example:
  shotdiff record --run nightly --tag chrome --case login --step submit \
    --ignore 0,0,100,20 screenshot.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := buildStepRecord(cmd, args[0])
			if err != nil {
				return err
			}

			return withServices(func() error {
				step, err := recorder.RecordStep(cmd.Context(), record)
				if err != nil {
					return err
				}

				cmd.Printf("Recorded step %d (%s)\n", step.ID, step.Name)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&recordRunFlag, "run", "", "run name")
	cmd.Flags().StringArrayVarP(&recordTagsFlag, "tag", "t", nil, "run tag (can be repeated)")
	cmd.Flags().StringVar(&recordCaseFlag, "case", "", "test case name")
	cmd.Flags().StringVar(&recordStepFlag, "step", "", "step name")
	cmd.Flags().Int64Var(&recordParentFlag, parentFlagName, 0, "id of the parent step")
	cmd.Flags().StringArrayVar(&recordIgnoreFlag, "ignore", nil, "ignore rectangle x1,y1,x2,y2 (can be repeated)")

	for _, name := range []string{"run", "case", "step"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

func buildStepRecord(cmd *cobra.Command, imagePath string) (m.StepRecord, error) {
	dataURI, err := readDataURI(imagePath)
	if err != nil {
		return m.StepRecord{}, err
	}

	ignore := make([]m.Rectangle, 0, len(recordIgnoreFlag))

	for _, value := range recordIgnoreFlag {
		area, err := parseRectangle(value)
		if err != nil {
			return m.StepRecord{}, err
		}

		ignore = append(ignore, area)
	}

	record := m.StepRecord{
		RunName:      recordRunFlag,
		RunTags:      recordTagsFlag,
		TestCaseName: recordCaseFlag,
		StepName:     recordStepFlag,
		DataURI:      dataURI,
		IgnoreAreas:  ignore,
	}

	if cmd.Flags().Changed(parentFlagName) {
		parent := recordParentFlag
		record.ParentStepID = &parent
	}

	return record, nil
}

func readDataURI(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	return "data:" + http.DetectContentType(raw) + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// parseRectangle parses "x1,y1,x2,y2".
func parseRectangle(value string) (m.Rectangle, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return m.Rectangle{}, fmt.Errorf("invalid ignore area %q: expected x1,y1,x2,y2", value)
	}

	coords := make([]int, 0, 4)

	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return m.Rectangle{}, fmt.Errorf("invalid ignore area %q: %w", value, err)
		}

		coords = append(coords, n)
	}

	return m.Rect(coords[0], coords[1], coords[2], coords[3]), nil
}
