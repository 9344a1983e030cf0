package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

func caseWithSteps(id int64, name string, steps ...m.Step) m.TestCaseWithSteps {
	return m.TestCaseWithSteps{TestCase: m.TestCase{ID: id, Name: name}, Steps: steps}
}

func TestDiffTestCases(t *testing.T) {
	tests := []struct {
		name     string
		left     m.TestCaseWithSteps
		right    m.TestCaseWithSteps
		wantDiff string
	}{
		{
			name:     "identical trees",
			left:     caseWithSteps(1, "T", step(1, "A")),
			right:    caseWithSteps(2, "T", step(2, "A")),
			wantDiff: "--- T\n+++ T\n@@ @@\n A\n",
		},
		{
			name:     "removed child",
			left:     caseWithSteps(1, "T", step(1, "A", step(2, "B"), step(3, "C"))),
			right:    caseWithSteps(2, "T", step(4, "A", step(5, "B"))),
			wantDiff: "--- T\n+++ T\n@@ -1,3 +1,2 @@\n A\n     B\n-    C\n",
		},
		{
			name:     "added root",
			left:     caseWithSteps(1, "T", step(1, "A")),
			right:    caseWithSteps(2, "T", step(2, "A"), step(3, "B")),
			wantDiff: "--- T\n+++ T\n@@ -1,1 +1,2 @@\n A\n+B\n",
		},
		{
			name:     "renamed step",
			left:     caseWithSteps(1, "T", step(1, "A"), step(2, "B")),
			right:    caseWithSteps(2, "T", step(3, "A"), step(4, "X")),
			wantDiff: "--- T\n+++ T\n@@ -1,2 +1,2 @@\n A\n-B\n+X\n",
		},
		{
			name:     "right side empty",
			left:     caseWithSteps(1, "T", step(1, "A")),
			right:    caseWithSteps(2, "T"),
			wantDiff: "--- T\n+++ T\n@@ -1,1 +0,0 @@\n-A\n",
		},
		{
			name:     "both empty",
			left:     caseWithSteps(1, "T"),
			right:    caseWithSteps(2, "T"),
			wantDiff: "--- T\n+++ T\n@@ @@\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunk, _, _ := DiffTestCases(tt.left, tt.right)

			assert.Equal(t, tt.wantDiff, hunk.String())
		})
	}
}

func TestDiffTestCases_LineMapsCoverBothTrees(t *testing.T) {
	left := caseWithSteps(1, "T", step(1, "A", step(2, "B"), step(3, "C")))
	right := caseWithSteps(2, "T", step(4, "A", step(5, "B")))

	hunk, leftLines, rightLines := DiffTestCases(left, right)

	assert.True(t, hunk.HasChanges())
	assert.Equal(t, m.LineIDMap{1: 1, 2: 2, 3: 3}, leftLines)
	assert.Equal(t, m.LineIDMap{1: 4, 2: 5}, rightLines)
}

func TestDiffLoner(t *testing.T) {
	tc := caseWithSteps(1, "T", step(1, "A"), step(2, "B"), step(3, "C"))

	t.Run("left loner", func(t *testing.T) {
		hunk, lines := DiffLoner(tc, m.SideLeft)

		assert.Equal(t, "--- T\n+++ T\n@@ @@\n-A\n-B\n-C\n", hunk.String())
		assert.Equal(t, m.LineIDMap{1: 1, 2: 2, 3: 3}, lines)
	})

	t.Run("right loner", func(t *testing.T) {
		hunk, lines := DiffLoner(tc, m.SideRight)

		assert.Equal(t, "--- T\n+++ T\n@@ @@\n+A\n+B\n+C\n", hunk.String())
		assert.Len(t, lines, 3)
	})
}

func TestAssembleRunDiff(t *testing.T) {
	left := []m.TestCaseWithSteps{
		caseWithSteps(1, "shared", step(1, "A")),
		caseWithSteps(2, "gone", step(2, "X")),
	}
	right := []m.TestCaseWithSteps{
		caseWithSteps(3, "new", step(3, "Y")),
		caseWithSteps(4, "shared", step(4, "A"), step(5, "B")),
	}

	got := AssembleRunDiff(left, right)

	want := "--- gone\n+++ gone\n@@ @@\n-X\n" +
		"--- new\n+++ new\n@@ @@\n+Y\n" +
		"--- shared\n+++ shared\n@@ -1,1 +1,2 @@\n A\n+B\n"
	assert.Equal(t, want, got.Diff)

	id, ok := got.LineIDs.Lookup("shared", m.SideRight, 2)
	require.True(t, ok)
	assert.Equal(t, int64(5), id)

	id, ok = got.LineIDs.Lookup("gone", m.SideLeft, 1)
	require.True(t, ok)
	assert.Equal(t, int64(2), id)

	_, ok = got.LineIDs.Lookup("gone", m.SideRight, 1)
	assert.False(t, ok)

	id, ok = got.LineIDs.Lookup("new", m.SideRight, 1)
	require.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestAssembleRunDiff_Empty(t *testing.T) {
	got := AssembleRunDiff(nil, nil)

	assert.Empty(t, got.Diff)
	assert.Empty(t, got.LineIDs)
}

func TestAssembleRunDiff_SameRunHasNoChanges(t *testing.T) {
	run := []m.TestCaseWithSteps{
		caseWithSteps(1, "login", step(1, "A", step(2, "B"))),
		caseWithSteps(2, "checkout", step(3, "C")),
	}

	got := AssembleRunDiff(run, run)

	for _, line := range splitLines(got.Diff) {
		if strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ") {
			continue
		}

		assert.NotRegexp(t, `^[-+]`, line)
	}
	assert.Contains(t, got.Diff, "--- login\n+++ login\n@@ @@\n A\n     B\n")
}
