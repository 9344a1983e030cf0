package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"shotdiff.dev/pkg/shotdiff/internal/adapter"
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

// DefaultWorkers bounds concurrent pixel comparisons when no limit is configured.
const DefaultWorkers = 4

// Comparator assembles comparison results from stored runs.
type Comparator interface {
	// CompareSteps compares the screenshots of two steps using the ignore areas
	// of both owning test cases.
	CompareSteps(ctx context.Context, leftStepID, rightStepID int64) (m.StepComparison, error)
	// CompareTestCases diffs the step trees of two test cases.
	CompareTestCases(ctx context.Context, leftCaseID, rightCaseID int64) (m.RunDiff, error)
	// CompareRuns diffs every test case of two runs.
	CompareRuns(ctx context.Context, leftRunID, rightRunID int64) (m.RunDiff, error)
}

type comparator struct {
	store   adapter.Store
	workers int
	slots   chan struct{}
}

// NewComparator creates a Comparator reading from store. workers bounds both
// the parallel loads of one request and the pixel comparisons across requests.
func NewComparator(store adapter.Store, workers int) Comparator {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	return &comparator{
		store:   store,
		workers: workers,
		slots:   make(chan struct{}, workers),
	}
}

type stepSide struct {
	step     m.Step
	testCase m.TestCase
}

func (c *comparator) CompareSteps(ctx context.Context, leftStepID, rightStepID int64) (m.StepComparison, error) {
	var left, right stepSide

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error

		left, err = c.loadStep(groupCtx, leftStepID)

		return err
	})

	group.Go(func() error {
		var err error

		right, err = c.loadStep(groupCtx, rightStepID)

		return err
	})

	if err := group.Wait(); err != nil {
		slog.Error("Failed to load steps", "left", leftStepID, "right", rightStepID, "error", err)
		return m.StepComparison{}, err
	}

	if err := c.acquire(ctx); err != nil {
		return m.StepComparison{}, err
	}
	defer c.release()

	ignore := m.CombineIgnoreAreas(left.testCase.IgnoreAreas, right.testCase.IgnoreAreas)

	result, err := CompareEncoded(left.step.DataURI, right.step.DataURI, ignore)
	if err != nil {
		slog.Error("Failed to compare steps", "left", leftStepID, "right", rightStepID, "error", err)
		return m.StepComparison{}, fmt.Errorf("failed to compare steps %d and %d: %w", leftStepID, rightStepID, err)
	}

	slog.Debug("Compared steps", "left", leftStepID, "right", rightStepID,
		"score", result.Score, "changed", result.ContainsChanges, "ignoreAreas", len(ignore))

	return result, nil
}

func (c *comparator) CompareTestCases(ctx context.Context, leftCaseID, rightCaseID int64) (m.RunDiff, error) {
	var left, right m.TestCaseWithSteps

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error

		left, err = c.loadTestCase(groupCtx, leftCaseID)

		return err
	})

	group.Go(func() error {
		var err error

		right, err = c.loadTestCase(groupCtx, rightCaseID)

		return err
	})

	if err := group.Wait(); err != nil {
		slog.Error("Failed to load test cases", "left", leftCaseID, "right", rightCaseID, "error", err)
		return m.RunDiff{}, err
	}

	hunk, leftLines, rightLines := DiffTestCases(left, right)

	lineIDs := make(m.RunLineIDs)
	lineIDs.Record(left.Name, m.SideLeft, leftLines)
	lineIDs.Record(right.Name, m.SideRight, rightLines)

	return m.RunDiff{Diff: hunk.String(), LineIDs: lineIDs}, nil
}

func (c *comparator) CompareRuns(ctx context.Context, leftRunID, rightRunID int64) (m.RunDiff, error) {
	var leftCases, rightCases []m.TestCase

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error

		leftCases, err = c.store.GetRunTestCases(groupCtx, leftRunID)
		if err != nil {
			return fmt.Errorf("failed to load test cases of run %d: %w", leftRunID, err)
		}

		return nil
	})

	group.Go(func() error {
		var err error

		rightCases, err = c.store.GetRunTestCases(groupCtx, rightRunID)
		if err != nil {
			return fmt.Errorf("failed to load test cases of run %d: %w", rightRunID, err)
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("Failed to load runs", "left", leftRunID, "right", rightRunID, "error", err)
		return m.RunDiff{}, err
	}

	left, right, err := c.attachTrees(ctx, leftCases, rightCases)
	if err != nil {
		slog.Error("Failed to load step trees", "left", leftRunID, "right", rightRunID, "error", err)
		return m.RunDiff{}, err
	}

	diff := AssembleRunDiff(left, right)

	slog.Info("Compared runs", "left", leftRunID, "right", rightRunID,
		"leftCases", len(left), "rightCases", len(right), "diffLines", strings.Count(diff.Diff, "\n"))

	return diff, nil
}

// attachTrees loads the step tree of every test case, at most c.workers at a time.
func (c *comparator) attachTrees(ctx context.Context, leftCases, rightCases []m.TestCase) ([]m.TestCaseWithSteps, []m.TestCaseWithSteps, error) {
	left := make([]m.TestCaseWithSteps, len(leftCases))
	right := make([]m.TestCaseWithSteps, len(rightCases))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.workers)

	load := func(dst []m.TestCaseWithSteps, cases []m.TestCase) {
		for i, tc := range cases {
			group.Go(func() error {
				steps, err := c.store.GetStepTree(groupCtx, tc.ID)
				if err != nil {
					return fmt.Errorf("failed to load steps of test case %d: %w", tc.ID, err)
				}

				dst[i] = m.TestCaseWithSteps{TestCase: tc, Steps: steps}

				return nil
			})
		}
	}

	load(left, leftCases)
	load(right, rightCases)

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

func (c *comparator) loadStep(ctx context.Context, stepID int64) (stepSide, error) {
	step, err := c.store.GetStep(ctx, stepID)
	if err != nil {
		return stepSide{}, fmt.Errorf("failed to load step %d: %w", stepID, err)
	}

	if step.DataURI == "" {
		step.DataURI, err = c.store.GetImageByStepID(ctx, stepID)
		if err != nil {
			return stepSide{}, fmt.Errorf("failed to load image of step %d: %w", stepID, err)
		}
	}

	tc, err := c.store.GetTestCase(ctx, step.TestCaseID)
	if err != nil {
		return stepSide{}, fmt.Errorf("failed to load test case %d: %w", step.TestCaseID, err)
	}

	return stepSide{step: step, testCase: tc}, nil
}

func (c *comparator) loadTestCase(ctx context.Context, id int64) (m.TestCaseWithSteps, error) {
	tc, err := c.store.GetTestCase(ctx, id)
	if err != nil {
		return m.TestCaseWithSteps{}, fmt.Errorf("failed to load test case %d: %w", id, err)
	}

	steps, err := c.store.GetStepTree(ctx, id)
	if err != nil {
		return m.TestCaseWithSteps{}, fmt.Errorf("failed to load steps of test case %d: %w", id, err)
	}

	return m.TestCaseWithSteps{TestCase: tc, Steps: steps}, nil
}

func (c *comparator) acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("waiting for comparison slot: %w", ctx.Err())
	case c.slots <- struct{}{}:
		return nil
	}
}

func (c *comparator) release() {
	<-c.slots
}
