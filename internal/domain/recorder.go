package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shotdiff.dev/pkg/shotdiff/internal/adapter"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// Recorder ingests screenshots into the store.
type Recorder interface {
	RecordStep(ctx context.Context, record m.StepRecord) (m.Step, error)
}

type recorder struct {
	store adapter.Store
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store adapter.Store) Recorder {
	return &recorder{store: store}
}

// RecordStep validates the record, then creates the run and test case when they
// do not exist yet and stores the step under its parent.
func (r *recorder) RecordStep(ctx context.Context, record m.StepRecord) (m.Step, error) {
	if err := validateRecord(record); err != nil {
		slog.Warn("Rejected step record", "run", record.RunName, "testCase", record.TestCaseName, "error", err)
		return m.Step{}, err
	}

	run, err := r.store.UpsertRun(ctx, record.RunName, record.RunTags)
	if err != nil {
		return m.Step{}, fmt.Errorf("failed to upsert run %q: %w", record.RunName, err)
	}

	tc, err := r.store.UpsertTestCase(ctx, run.ID, record.TestCaseName, record.IgnoreAreas)
	if err != nil {
		return m.Step{}, fmt.Errorf("failed to upsert test case %q: %w", record.TestCaseName, err)
	}

	step, err := r.store.InsertStep(ctx, tc.ID, record.ParentStepID, record.StepName, record.DataURI)
	if err != nil {
		return m.Step{}, fmt.Errorf("failed to insert step %q: %w", record.StepName, err)
	}

	slog.Info("Recorded step", "run", run.Name, "testCase", tc.Name, "step", step.Name, "id", step.ID)

	return step, nil
}

func validateRecord(record m.StepRecord) error {
	switch {
	case strings.TrimSpace(record.RunName) == "":
		return fmt.Errorf("%w: run name is required", m.ErrInvalidRecord)
	case strings.TrimSpace(record.TestCaseName) == "":
		return fmt.Errorf("%w: test case name is required", m.ErrInvalidRecord)
	case strings.TrimSpace(record.StepName) == "":
		return fmt.Errorf("%w: step name is required", m.ErrInvalidRecord)
	}

	if _, err := DecodeDataURI(record.DataURI); err != nil {
		return fmt.Errorf("%w: %w", m.ErrInvalidRecord, err)
	}

	return nil
}
