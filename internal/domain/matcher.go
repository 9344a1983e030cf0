package domain

import (
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// MatchTestCases pairs test cases of two runs by name.
//
// Left cases are visited in order; each takes the first remaining right case
// with the same name. Unpaired cases end up in the loner lists, right loners in
// their original order. Duplicate names are not rejected.
func MatchTestCases(left, right []m.TestCase) m.Partition {
	pairs, leftLoners, rightLoners := partitionByName(left, right, func(tc m.TestCase) string { return tc.Name })

	matches := make([]m.Match, 0, len(pairs))
	for _, pair := range pairs {
		matches = append(matches, m.Match{Left: pair.left, Right: pair.right})
	}

	return m.Partition{
		Matches:     matches,
		LeftLoners:  leftLoners,
		RightLoners: rightLoners,
	}
}

type namedPair[T any] struct {
	left  T
	right T
}

func partitionByName[T any](left, right []T, nameOf func(T) string) ([]namedPair[T], []T, []T) {
	remaining := make([]T, len(right))
	copy(remaining, right)

	pairs := make([]namedPair[T], 0, min(len(left), len(right)))
	leftLoners := make([]T, 0)

	for _, l := range left {
		index := indexByName(remaining, nameOf(l), nameOf)
		if index < 0 {
			leftLoners = append(leftLoners, l)
			continue
		}

		pairs = append(pairs, namedPair[T]{left: l, right: remaining[index]})
		remaining = append(remaining[:index], remaining[index+1:]...)
	}

	return pairs, leftLoners, remaining
}

func indexByName[T any](items []T, name string, nameOf func(T) string) int {
	for i, item := range items {
		if nameOf(item) == name {
			return i
		}
	}

	return -1
}
