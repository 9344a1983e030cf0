package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

const createdLayout = "2006-01-02 15:04:05"

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	format Format
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format Format) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format}
}

// DisplayRuns prints the runs as a table, or encoded.
func (s *SimpleUI) DisplayRuns(ctx context.Context, runs []m.Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format != FormatText {
		return s.encode(runs)
	}

	return s.printf("%s", renderRunsTable(runs))
}

// DisplayRunDiff prints the diff text followed by a summary line.
func (s *SimpleUI) DisplayRunDiff(ctx context.Context, diff m.RunDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format != FormatText {
		return s.encode(diff)
	}

	if diff.Diff == "" {
		return s.printf("No test cases to compare\n")
	}

	stats := CountDiff(diff.Diff)

	return s.printf("%s\n%d test case(s), %d line(s) added, %d line(s) removed\n",
		diff.Diff, stats.Hunks, stats.Added, stats.Removed)
}

// DisplayStepComparison prints whether two steps differ.
func (s *SimpleUI) DisplayStepComparison(ctx context.Context, leftStepID, rightStepID int64, result m.StepComparison) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format != FormatText {
		return s.encode(result)
	}

	return s.printf("%s", renderStepComparison(leftStepID, rightStepID, result))
}

func (s *SimpleUI) encode(v any) error {
	var (
		out []byte
		err error
	)

	switch s.format {
	case FormatYAML:
		out, err = yaml.Marshal(v)
	default:
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	}

	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", s.format, err)
	}

	_, err = s.cmd.OutOrStdout().Write(out)

	return err
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func renderRunsTable(runs []m.Run) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"ID", "Name", "Created", "Tags"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	for _, run := range runs {
		table.Append([]string{
			fmt.Sprintf("%d", run.ID),
			run.Name,
			run.CreatedAt.Format(createdLayout),
			strings.Join(run.TagValues(), ", "),
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Runs %d", len(runs)), "", ""})

	table.Render()

	return tableBuffer.String()
}

func renderStepComparison(leftStepID, rightStepID int64, result m.StepComparison) string {
	status := "unchanged"
	if result.ContainsChanges {
		status = "changed"
	}

	return fmt.Sprintf("Steps %d and %d: %s (score %.4f%%)\n", leftStepID, rightStepID, status, result.Score)
}
