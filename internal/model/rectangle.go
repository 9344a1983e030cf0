package model

import (
	"encoding/json"
	"fmt"
)

// Point is a pixel coordinate.
type Point struct {
	X int
	Y int
}

// Rectangle is an ignore region. Both corners are inclusive.
//
// On the wire it travels as a pair of 2-tuples: [[x1,y1],[x2,y2]].
type Rectangle struct {
	Min Point
	Max Point
}

// Rect builds a Rectangle from two opposite corners given in any order.
// Min holds the smaller coordinate of each axis.
func Rect(x1, y1, x2, y2 int) Rectangle {
	minX, maxX := order(x1, x2)
	minY, maxY := order(y1, y2)

	return Rectangle{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}

// Contains reports whether (x, y) lies inside the rectangle.
// Rectangles built as literals may carry swapped corners, so order is checked here too.
func (r Rectangle) Contains(x, y int) bool {
	minX, maxX := order(r.Min.X, r.Max.X)
	minY, maxY := order(r.Min.Y, r.Max.Y)

	return x >= minX && x <= maxX && y >= minY && y <= maxY
}

// String renders the rectangle as (x1,y1)-(x2,y2).
func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// MarshalJSON encodes the rectangle as [[x1,y1],[x2,y2]].
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal([2][2]int{{r.Min.X, r.Min.Y}, {r.Max.X, r.Max.Y}})
}

// UnmarshalJSON decodes [[x1,y1],[x2,y2]].
func (r *Rectangle) UnmarshalJSON(data []byte) error {
	var pair [][]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("rectangle: %w", err)
	}

	if len(pair) != 2 || len(pair[0]) != 2 || len(pair[1]) != 2 {
		return fmt.Errorf("rectangle: expected [[x1,y1],[x2,y2]], got %s", string(data))
	}

	*r = Rect(pair[0][0], pair[0][1], pair[1][0], pair[1][1])

	return nil
}

// MarshalYAML encodes the rectangle in the same tuple form as JSON.
func (r Rectangle) MarshalYAML() (interface{}, error) {
	return [][]int{{r.Min.X, r.Min.Y}, {r.Max.X, r.Max.Y}}, nil
}

// CombineIgnoreAreas concatenates the ignore lists of both sides.
// Duplicates are kept.
func CombineIgnoreAreas(left, right []Rectangle) []Rectangle {
	combined := make([]Rectangle, 0, len(left)+len(right))
	combined = append(combined, left...)
	combined = append(combined, right...)

	return combined
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}
