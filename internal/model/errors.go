package model

import "errors"

var (
	// ErrInvalidEncoding is returned when a data URI has no separator or its
	// payload is not valid base64.
	ErrInvalidEncoding = errors.New("invalid data uri encoding")
	// ErrUnsupportedImage is returned when decoded bytes are not a known bitmap format.
	ErrUnsupportedImage = errors.New("unsupported or corrupt image")
	// ErrDimensionMismatch is returned when two compared images differ in size.
	ErrDimensionMismatch = errors.New("image dimensions differ")
	// ErrDegenerateScore marks a comparison where no pixel carried any signal.
	ErrDegenerateScore = errors.New("change score denominator is zero")
	// ErrNotFound is returned when a run, test case or step does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRecord is returned when an ingested step is missing required fields.
	ErrInvalidRecord = errors.New("invalid step record")
)
