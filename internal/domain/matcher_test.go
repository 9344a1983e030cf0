package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

func testCases(names ...string) []m.TestCase {
	cases := make([]m.TestCase, 0, len(names))
	for i, name := range names {
		cases = append(cases, m.TestCase{ID: int64(i + 1), Name: name})
	}

	return cases
}

func names(cases []m.TestCase) []string {
	out := make([]string, 0, len(cases))
	for _, tc := range cases {
		out = append(out, tc.Name)
	}

	return out
}

func TestMatchTestCases(t *testing.T) {
	tests := []struct {
		name        string
		left        []m.TestCase
		right       []m.TestCase
		wantMatches []string
		wantLeft    []string
		wantRight   []string
	}{
		{
			name:        "both empty",
			wantMatches: []string{},
			wantLeft:    []string{},
			wantRight:   []string{},
		},
		{
			name:        "identical sets",
			left:        testCases("login", "checkout"),
			right:       testCases("login", "checkout"),
			wantMatches: []string{"login", "checkout"},
			wantLeft:    []string{},
			wantRight:   []string{},
		},
		{
			name:        "loners on both sides",
			left:        testCases("login", "search"),
			right:       testCases("profile", "login"),
			wantMatches: []string{"login"},
			wantLeft:    []string{"search"},
			wantRight:   []string{"profile"},
		},
		{
			name:        "right loners keep their order",
			left:        testCases("b"),
			right:       testCases("c", "b", "a"),
			wantMatches: []string{"b"},
			wantLeft:    []string{},
			wantRight:   []string{"c", "a"},
		},
		{
			name:        "duplicate names consume right cases in order",
			left:        testCases("x", "x", "x"),
			right:       testCases("x", "x"),
			wantMatches: []string{"x", "x"},
			wantLeft:    []string{"x"},
			wantRight:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchTestCases(tt.left, tt.right)

			matched := make([]string, 0, len(got.Matches))
			for _, match := range got.Matches {
				assert.Equal(t, match.Left.Name, match.Right.Name)
				matched = append(matched, match.Left.Name)
			}

			assert.Equal(t, tt.wantMatches, matched)
			assert.Equal(t, tt.wantLeft, names(got.LeftLoners))
			assert.Equal(t, tt.wantRight, names(got.RightLoners))
			assert.Equal(t, len(tt.left), len(got.Matches)+len(got.LeftLoners))
			assert.Equal(t, len(tt.right), len(got.Matches)+len(got.RightLoners))
		})
	}
}

func TestMatchTestCases_DuplicatePairsFollowInputOrder(t *testing.T) {
	left := []m.TestCase{{ID: 1, Name: "x"}, {ID: 2, Name: "x"}}
	right := []m.TestCase{{ID: 10, Name: "x"}, {ID: 11, Name: "x"}}

	got := MatchTestCases(left, right)

	assert.Len(t, got.Matches, 2)
	assert.Equal(t, int64(1), got.Matches[0].Left.ID)
	assert.Equal(t, int64(10), got.Matches[0].Right.ID)
	assert.Equal(t, int64(2), got.Matches[1].Left.ID)
	assert.Equal(t, int64(11), got.Matches[1].Right.ID)
}

func TestMatchTestCases_DoesNotMutateInput(t *testing.T) {
	right := testCases("a", "b")

	MatchTestCases(testCases("a"), right)

	assert.Equal(t, []string{"a", "b"}, names(right))
}
