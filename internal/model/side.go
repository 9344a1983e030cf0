package model

import "fmt"

// Side identifies one of the two runs being compared.
type Side int

const (
	// SideLeft is the baseline side of a comparison.
	SideLeft Side = iota
	// SideRight is the candidate side of a comparison.
	SideRight
)

// String returns the snake_case name used in query parameters and JSON keys.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}

	return fmt.Sprintf("side(%d)", int(s))
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}

	return SideLeft
}

// ParseSide converts "left" or "right" into a Side.
func ParseSide(value string) (Side, error) {
	switch value {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}

	return SideLeft, fmt.Errorf("unknown side %q", value)
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// LineIDMap maps a 1-based serialized line number to the step that produced it.
type LineIDMap map[int]int64

// SideLineIDs holds the line maps of one test case for both sides.
type SideLineIDs struct {
	Left  LineIDMap `json:"left,omitempty" yaml:"left,omitempty"`
	Right LineIDMap `json:"right,omitempty" yaml:"right,omitempty"`
}

// Get returns the map recorded for side, or nil.
func (s *SideLineIDs) Get(side Side) LineIDMap {
	if side == SideLeft {
		return s.Left
	}

	return s.Right
}

// Set records lines for side, replacing any previous map.
func (s *SideLineIDs) Set(side Side, lines LineIDMap) {
	if side == SideLeft {
		s.Left = lines
		return
	}

	s.Right = lines
}

// RunLineIDs indexes line maps by test case name.
type RunLineIDs map[string]*SideLineIDs

// Record stores lines under (name, side).
func (r RunLineIDs) Record(name string, side Side, lines LineIDMap) {
	entry, ok := r[name]
	if !ok {
		entry = &SideLineIDs{}
		r[name] = entry
	}

	entry.Set(side, lines)
}

// Lookup returns the step id for a line of the named test case on side.
func (r RunLineIDs) Lookup(name string, side Side, line int) (int64, bool) {
	entry, ok := r[name]
	if !ok {
		return 0, false
	}

	id, ok := entry.Get(side)[line]

	return id, ok
}
