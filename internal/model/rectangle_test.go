package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRect_NormalizesCorners(t *testing.T) {
	tests := []struct {
		name string
		got  Rectangle
	}{
		{"ordered", Rect(0, 0, 10, 20)},
		{"swapped", Rect(10, 20, 0, 0)},
		{"mixed", Rect(0, 20, 10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Point{X: 0, Y: 0}, tt.got.Min)
			assert.Equal(t, Point{X: 10, Y: 20}, tt.got.Max)
		})
	}
}

func TestRectangle_Contains(t *testing.T) {
	literal := Rectangle{Min: Point{X: 5, Y: 5}, Max: Point{X: 0, Y: 0}}

	assert.True(t, literal.Contains(0, 0))
	assert.True(t, literal.Contains(5, 5))
	assert.True(t, Rect(1, 1, 1, 1).Contains(1, 1))
	assert.False(t, Rect(1, 1, 1, 1).Contains(2, 1))
	assert.False(t, Rect(0, 0, 5, 5).Contains(6, 0))
}

func TestRectangle_JSON(t *testing.T) {
	encoded, err := json.Marshal(Rect(1, 2, 3, 4))
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[3,4]]`, string(encoded))

	var decoded Rectangle
	require.NoError(t, json.Unmarshal([]byte(`[[9,8],[1,2]]`), &decoded))
	assert.Equal(t, Rect(1, 2, 9, 8), decoded)
}

func TestRectangle_UnmarshalJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not an array", `{"x": 1}`},
		{"one corner", `[[1,2]]`},
		{"three corners", `[[1,2],[3,4],[5,6]]`},
		{"short corner", `[[1],[3,4]]`},
		{"long corner", `[[1,2,3],[3,4]]`},
		{"strings", `[["a","b"],[3,4]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Rectangle
			err := json.Unmarshal([]byte(tt.input), &r)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "rectangle")
		})
	}
}

func TestRectangle_YAML(t *testing.T) {
	encoded, err := yaml.Marshal([]Rectangle{Rect(0, 0, 1, 1)})
	require.NoError(t, err)

	var decoded [][][]int
	require.NoError(t, yaml.Unmarshal(encoded, &decoded))
	assert.Equal(t, [][][]int{{{0, 0}, {1, 1}}}, decoded)
}

func TestCombineIgnoreAreas(t *testing.T) {
	left := []Rectangle{Rect(0, 0, 1, 1)}
	right := []Rectangle{Rect(0, 0, 1, 1), Rect(2, 2, 3, 3)}

	assert.Equal(t, []Rectangle{Rect(0, 0, 1, 1), Rect(0, 0, 1, 1), Rect(2, 2, 3, 3)}, CombineIgnoreAreas(left, right))
	assert.Empty(t, CombineIgnoreAreas(nil, nil))
	assert.NotNil(t, CombineIgnoreAreas(nil, nil))
}
