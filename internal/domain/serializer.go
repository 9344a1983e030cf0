package domain

import (
	"strings"

	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// indentUnit is prepended once per tree level.
const indentUnit = "    "

type stepFrame struct {
	step  *m.Step
	depth int
}

// SerializeSteps flattens a step forest into indented lines, depth-first pre-order.
//
// The first emitted line is numbered startLine. It returns the text (every line
// newline-terminated), the line -> step id map and the next unused line number.
func SerializeSteps(steps []m.Step, startLine int) (string, m.LineIDMap, int) {
	var b strings.Builder

	lines := make(m.LineIDMap)
	line := startLine

	stack := make([]stepFrame, 0, len(steps))
	stack = pushSiblings(stack, steps, 0)

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.WriteString(strings.Repeat(indentUnit, frame.depth))
		b.WriteString(frame.step.Name)
		b.WriteByte('\n')

		lines[line] = frame.step.ID
		line++

		stack = pushSiblings(stack, frame.step.Children, frame.depth+1)
	}

	return b.String(), lines, line
}

// pushSiblings pushes steps in reverse so the first sibling is popped first.
func pushSiblings(stack []stepFrame, steps []m.Step, depth int) []stepFrame {
	for i := len(steps) - 1; i >= 0; i-- {
		stack = append(stack, stepFrame{step: &steps[i], depth: depth})
	}

	return stack
}

// splitLines splits serialized text into lines without their terminators.
func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
