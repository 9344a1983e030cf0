// Package model defines the data structures shared by the comparison engine,
// the store and the transports.
package model

import "time"

// Tag is a free-form label attached to runs and test cases.
type Tag struct {
	ID    int64  `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
}

// Run is one recorded session. Runs are immutable once created.
type Run struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Tags      []Tag     `json:"tags" yaml:"tags"`
}

// TagValues returns the tag values in stored order.
func (r Run) TagValues() []string {
	values := make([]string, 0, len(r.Tags))
	for _, tag := range r.Tags {
		values = append(values, tag.Value)
	}

	return values
}

// TestCase is a named scenario within a run.
type TestCase struct {
	ID          int64       `json:"id" yaml:"id"`
	RunID       int64       `json:"run_id" yaml:"run_id"`
	Name        string      `json:"name" yaml:"name"`
	CreatedAt   time.Time   `json:"created_at" yaml:"created_at"`
	IgnoreAreas []Rectangle `json:"ignore_areas" yaml:"ignore_areas"`
	Tags        []Tag       `json:"tags" yaml:"tags"`
}

// TestCaseWithSteps is a test case together with its root steps.
type TestCaseWithSteps struct {
	TestCase
	Steps []Step `json:"steps" yaml:"steps"`
}

// Step is one recorded screenshot event.
type Step struct {
	ID         int64     `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	DataURI    string    `json:"data_uri,omitempty" yaml:"-"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	TestCaseID int64     `json:"test_case_id" yaml:"test_case_id"`
	ParentID   *int64    `json:"parent_step_id,omitempty" yaml:"parent_step_id,omitempty"`
	Children   []Step    `json:"children,omitempty" yaml:"children,omitempty"`
}

// StepRecord is the input for ingesting a single step.
type StepRecord struct {
	RunName      string
	RunTags      []string
	TestCaseName string
	StepName     string
	DataURI      string
	ParentStepID *int64
	IgnoreAreas  []Rectangle
}
