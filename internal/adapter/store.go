package adapter

import (
	"context"

	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// Store abstracts the persistence of runs, test cases and steps so the domain
// layer can be exercised without a database.
//
//nolint:interfacebloat // Mirrors the queries the comparison and ingestion flows need.
type Store interface {
	// GetStepTree returns the root steps of a test case with children linked,
	// siblings in insertion order.
	GetStepTree(ctx context.Context, testCaseID int64) ([]m.Step, error)

	// GetStep returns a single step without its children.
	GetStep(ctx context.Context, stepID int64) (m.Step, error)

	// GetTestCase returns a test case including its ignore areas and tags.
	GetTestCase(ctx context.Context, id int64) (m.TestCase, error)

	// GetRunTestCases lists the test cases of a run in insertion order.
	GetRunTestCases(ctx context.Context, runID int64) ([]m.TestCase, error)

	// GetImageByStepID returns the data URI screenshot of a step.
	GetImageByStepID(ctx context.Context, stepID int64) (string, error)

	// GetRun returns a run with its tags.
	GetRun(ctx context.Context, id int64) (m.Run, error)

	// ListRuns returns every run with its tags, oldest first.
	ListRuns(ctx context.Context) ([]m.Run, error)

	// UpsertRun returns the run with the given name, creating it with tags when absent.
	UpsertRun(ctx context.Context, name string, tags []string) (m.Run, error)

	// UpsertTestCase returns the named test case of a run, creating it when absent.
	// Ignore areas not yet stored on the test case are appended.
	UpsertTestCase(ctx context.Context, runID int64, name string, ignore []m.Rectangle) (m.TestCase, error)

	// InsertStep stores a new step under an optional parent.
	InsertStep(ctx context.Context, testCaseID int64, parentID *int64, name, dataURI string) (m.Step, error)

	// Close releases the underlying resources.
	Close() error
}
