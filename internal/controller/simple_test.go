package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

func newSimpleUI(format Format) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, format), &buf
}

func sampleRuns() []m.Run {
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	return []m.Run{
		{ID: 1, Name: "nightly", CreatedAt: created, Tags: []m.Tag{{ID: 1, Value: "chrome"}, {ID: 2, Value: "linux"}}},
		{ID: 2, Name: "release", CreatedAt: created},
	}
}

func TestSimpleUI_DisplayRuns(t *testing.T) {
	tests := []struct {
		name         string
		runs         []m.Run
		wantContains []string
	}{
		{
			name:         "no runs",
			runs:         []m.Run{},
			wantContains: []string{"ID", "NAME", "TOTAL RUNS 0"},
		},
		{
			name:         "runs with tags",
			runs:         sampleRuns(),
			wantContains: []string{"nightly", "release", "chrome, linux", "2024-05-06 07:08:09", "TOTAL RUNS 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newSimpleUI(FormatText)

			require.NoError(t, ui.DisplayRuns(context.Background(), tt.runs))

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_DisplayRunsEncoded(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		ui, buf := newSimpleUI(FormatJSON)
		require.NoError(t, ui.DisplayRuns(context.Background(), sampleRuns()))

		var runs []m.Run
		require.NoError(t, json.Unmarshal(buf.Bytes(), &runs))
		assert.Len(t, runs, 2)
	})

	t.Run("yaml", func(t *testing.T) {
		ui, buf := newSimpleUI(FormatYAML)
		require.NoError(t, ui.DisplayRuns(context.Background(), sampleRuns()))

		var runs []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &runs))
		require.Len(t, runs, 2)
		assert.Equal(t, "nightly", runs[0]["name"])
	})
}

func TestSimpleUI_DisplayRunDiff(t *testing.T) {
	diff := m.RunDiff{Diff: "--- T\n+++ T\n@@ -1,2 +1,2 @@\n A\n-B\n+C\n", LineIDs: m.RunLineIDs{}}

	t.Run("text", func(t *testing.T) {
		ui, buf := newSimpleUI(FormatText)
		require.NoError(t, ui.DisplayRunDiff(context.Background(), diff))

		assert.Contains(t, buf.String(), diff.Diff)
		assert.Contains(t, buf.String(), "1 test case(s), 1 line(s) added, 1 line(s) removed")
	})

	t.Run("empty", func(t *testing.T) {
		ui, buf := newSimpleUI(FormatText)
		require.NoError(t, ui.DisplayRunDiff(context.Background(), m.RunDiff{}))

		assert.Equal(t, "No test cases to compare\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		ui, buf := newSimpleUI(FormatJSON)
		require.NoError(t, ui.DisplayRunDiff(context.Background(), diff))

		assert.Contains(t, buf.String(), `"diff":`)
		assert.Contains(t, buf.String(), `"line_id_map":`)
	})
}

func TestSimpleUI_DisplayStepComparison(t *testing.T) {
	ui, buf := newSimpleUI(FormatText)

	require.NoError(t, ui.DisplayStepComparison(context.Background(), 3, 4, m.StepComparison{ContainsChanges: true, Score: 12.5}))
	assert.Equal(t, "Steps 3 and 4: changed (score 12.5000%)\n", buf.String())

	buf.Reset()
	require.NoError(t, ui.DisplayStepComparison(context.Background(), 3, 3, m.StepComparison{}))
	assert.Equal(t, "Steps 3 and 3: unchanged (score 0.0000%)\n", buf.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, buf := newSimpleUI(FormatText)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.DisplayRuns(ctx, sampleRuns()), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    Format
		wantErr bool
	}{
		{value: "", want: FormatText},
		{value: "text", want: FormatText},
		{value: "JSON", want: FormatJSON},
		{value: " yaml ", want: FormatYAML},
		{value: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseFormat(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountDiff(t *testing.T) {
	diff := "--- a\n+++ a\n@@ @@\n-X\n--- b\n+++ b\n@@ -1,1 +1,2 @@\n A\n+B\n"

	assert.Equal(t, DiffStats{Hunks: 2, Added: 1, Removed: 1}, CountDiff(diff))
	assert.Equal(t, DiffStats{}, CountDiff(""))
}
