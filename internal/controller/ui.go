// Package controller renders runs, diffs and step comparisons for the command line.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// Format selects how results are written.
type Format string

// Available output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, json or yaml)", value)
	}
}

// UI defines how command results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayRuns(ctx context.Context, runs []m.Run) error
	DisplayRunDiff(ctx context.Context, diff m.RunDiff) error
	DisplayStepComparison(ctx context.Context, leftStepID, rightStepID int64, result m.StepComparison) error
}

// DiffStats summarises a rendered run diff.
type DiffStats struct {
	Hunks   int
	Added   int
	Removed int
}

// CountDiff scans unified diff text; file headers are not counted as changes.
func CountDiff(diff string) DiffStats {
	var stats DiffStats

	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "--- "):
			stats.Hunks++
		case strings.HasPrefix(line, "+++ "):
		case strings.HasPrefix(line, "+"):
			stats.Added++
		case strings.HasPrefix(line, "-"):
			stats.Removed++
		}
	}

	return stats
}
