package model

import (
	"fmt"
	"strings"
)

// LineKind tags a line of a diff hunk.
type LineKind byte

const (
	// LineContext is a line present on both sides.
	LineContext LineKind = ' '
	// LineRemoved is a line present only on the left.
	LineRemoved LineKind = '-'
	// LineAdded is a line present only on the right.
	LineAdded LineKind = '+'
)

// DiffLine is one tagged line of a hunk body.
type DiffLine struct {
	Kind LineKind
	Text string
}

// Hunk is a whole-file diff block for one test case.
type Hunk struct {
	OldName string
	NewName string
	// Ranged selects the unified "@@ -a,b +c,d @@" marker instead of a bare "@@ @@".
	Ranged bool
	Lines  []DiffLine
}

// Counts returns how many lines each side contributes to the hunk.
func (h Hunk) Counts() (oldLines, newLines int) {
	for _, line := range h.Lines {
		switch line.Kind {
		case LineContext:
			oldLines++
			newLines++
		case LineRemoved:
			oldLines++
		case LineAdded:
			newLines++
		}
	}

	return oldLines, newLines
}

// HasChanges reports whether the hunk contains added or removed lines.
func (h Hunk) HasChanges() bool {
	for _, line := range h.Lines {
		if line.Kind != LineContext {
			return true
		}
	}

	return false
}

// String renders the hunk in unified diff form.
func (h Hunk) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "--- %s\n+++ %s\n", h.OldName, h.NewName)

	if h.Ranged {
		oldLines, newLines := h.Counts()
		fmt.Fprintf(&b, "@@ -%s +%s @@\n", hunkRange(oldLines), hunkRange(newLines))
	} else {
		b.WriteString("@@ @@\n")
	}

	for _, line := range h.Lines {
		b.WriteByte(byte(line.Kind))
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}

	return b.String()
}

func hunkRange(count int) string {
	if count == 0 {
		return "0,0"
	}

	return fmt.Sprintf("1,%d", count)
}

// Match is a pair of test cases sharing a name across two runs.
type Match struct {
	Left  TestCase
	Right TestCase
}

// Partition is the matcher output.
type Partition struct {
	Matches     []Match
	LeftLoners  []TestCase
	RightLoners []TestCase
}

// RunDiff is the aggregate diff document of two runs plus its line index.
type RunDiff struct {
	Diff    string     `json:"diff" yaml:"diff"`
	LineIDs RunLineIDs `json:"line_id_map" yaml:"line_id_map"`
}

// StepComparison is the result of comparing two step screenshots.
type StepComparison struct {
	ContainsChanges bool    `json:"contains_changes" yaml:"contains_changes"`
	Score           float64 `json:"score" yaml:"score"`
	DiffDataURI     string  `json:"-" yaml:"-"`
}
