package domain

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// DiffTestCases diffs the step trees of a matched pair.
//
// The result is always a single hunk covering both trees in full so that every
// serialized line stays addressable through the returned line maps.
func DiffTestCases(left, right m.TestCaseWithSteps) (m.Hunk, m.LineIDMap, m.LineIDMap) {
	leftText, leftLines, _ := SerializeSteps(left.Steps, 1)
	rightText, rightLines, _ := SerializeSteps(right.Steps, 1)

	hunk := m.Hunk{OldName: left.Name, NewName: right.Name}

	if leftText == rightText {
		hunk.Lines = tagLines(splitLines(leftText), m.LineContext)
		return hunk, leftLines, rightLines
	}

	hunk.Ranged = true
	hunk.Lines = diffLines(splitLines(leftText), splitLines(rightText))

	return hunk, leftLines, rightLines
}

// DiffLoner renders a test case that exists on one side only.
// Every line is removed for a left loner and added for a right loner.
func DiffLoner(tc m.TestCaseWithSteps, side m.Side) (m.Hunk, m.LineIDMap) {
	text, lines, _ := SerializeSteps(tc.Steps, 1)

	kind := m.LineRemoved
	if side == m.SideRight {
		kind = m.LineAdded
	}

	return m.Hunk{
		OldName: tc.Name,
		NewName: tc.Name,
		Lines:   tagLines(splitLines(text), kind),
	}, lines
}

// AssembleRunDiff matches the test cases of two runs and concatenates their hunks:
// left loners first, then right loners, then matched pairs.
// A later entry replaces an earlier one recorded under the same (name, side).
func AssembleRunDiff(left, right []m.TestCaseWithSteps) m.RunDiff {
	pairs, leftLoners, rightLoners := partitionByName(left, right, func(tc m.TestCaseWithSteps) string { return tc.Name })

	var b strings.Builder

	lineIDs := make(m.RunLineIDs)

	for _, loner := range leftLoners {
		hunk, lines := DiffLoner(loner, m.SideLeft)
		b.WriteString(hunk.String())
		lineIDs.Record(loner.Name, m.SideLeft, lines)
	}

	for _, loner := range rightLoners {
		hunk, lines := DiffLoner(loner, m.SideRight)
		b.WriteString(hunk.String())
		lineIDs.Record(loner.Name, m.SideRight, lines)
	}

	for _, pair := range pairs {
		hunk, leftLines, rightLines := DiffTestCases(pair.left, pair.right)
		b.WriteString(hunk.String())
		lineIDs.Record(pair.left.Name, m.SideLeft, leftLines)
		lineIDs.Record(pair.right.Name, m.SideRight, rightLines)
	}

	return m.RunDiff{Diff: b.String(), LineIDs: lineIDs}
}

// diffLines translates difflib opcodes into tagged lines, in opcode order.
func diffLines(a, b []string) []m.DiffLine {
	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)

	out := make([]m.DiffLine, 0, max(len(a), len(b)))

	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			out = append(out, tagLines(a[op.I1:op.I2], m.LineContext)...)
		case 'd':
			out = append(out, tagLines(a[op.I1:op.I2], m.LineRemoved)...)
		case 'i':
			out = append(out, tagLines(b[op.J1:op.J2], m.LineAdded)...)
		case 'r':
			out = append(out, tagLines(a[op.I1:op.I2], m.LineRemoved)...)
			out = append(out, tagLines(b[op.J1:op.J2], m.LineAdded)...)
		}
	}

	return out
}

func tagLines(lines []string, kind m.LineKind) []m.DiffLine {
	tagged := make([]m.DiffLine, 0, len(lines))
	for _, line := range lines {
		tagged = append(tagged, m.DiffLine{Kind: kind, Text: line})
	}

	return tagged
}
