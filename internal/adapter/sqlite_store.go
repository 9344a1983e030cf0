package adapter

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Register the "sqlite" database/sql driver.
	m "shotdiff.dev/pkg/shotdiff/internal/model"
)

const (
	sqliteDriver       = "sqlite"
	memoryPath         = ":memory:"
	defaultBusyTimeout = 10_000
	maxTxRetries       = 3
)

type storeConfig struct {
	busyTimeout int
	mkdirAll    bool
}

// StoreOption customises OpenSQLiteStore.
type StoreOption func(*storeConfig)

// WithBusyTimeout sets PRAGMA busy_timeout in milliseconds. Default: 10000.
func WithBusyTimeout(ms int) StoreOption { return func(c *storeConfig) { c.busyTimeout = ms } }

// WithMkdirAll creates the parent directories of the database file.
func WithMkdirAll() StoreOption { return func(c *storeConfig) { c.mkdirAll = true } }

// SQLiteStore implements Store on top of modernc.org/sqlite.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLiteStore opens (or creates) the database at path, applies pragmas and
// the schema.
func OpenSQLiteStore(path string, opts ...StoreOption) (*SQLiteStore, error) {
	cfg := storeConfig{busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.mkdirAll && path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	if path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout),
		"PRAGMA synchronous = NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Debug("Opened sqlite store", "path", path, "busyTimeout", cfg.busyTimeout)

	return &SQLiteStore{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type stepRow struct {
	step     m.Step
	parentID sql.NullInt64
}

// GetStepTree loads every step of the test case in one query and links the tree
// in memory. Children are stored after their parents, so walking rows from the
// highest id down sees every subtree complete before its parent.
func (s *SQLiteStore) GetStepTree(ctx context.Context, testCaseID int64) ([]m.Step, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, data_uri, created_at, test_case_id, parent_step_id
		FROM step
		WHERE test_case_id = ?
		ORDER BY id`, testCaseID)
	if err != nil {
		slog.Error("Failed to query step tree", "testCaseID", testCaseID, "error", err)
		return nil, fmt.Errorf("failed to query steps: %w", err)
	}
	defer rows.Close()

	var flat []stepRow

	known := make(map[int64]struct{})

	for rows.Next() {
		row, err := scanStep(rows)
		if err != nil {
			return nil, err
		}

		flat = append(flat, row)
		known[row.step.ID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read steps: %w", err)
	}

	return linkSteps(flat, known), nil
}

func linkSteps(flat []stepRow, known map[int64]struct{}) []m.Step {
	children := make(map[int64][]m.Step)

	var roots []m.Step

	for i := len(flat) - 1; i >= 0; i-- {
		row := flat[i]
		step := row.step

		if kids, ok := children[step.ID]; ok {
			slices.Reverse(kids)
			step.Children = kids
			delete(children, step.ID)
		}

		_, parentKnown := known[row.parentID.Int64]
		if !row.parentID.Valid || !parentKnown {
			roots = append(roots, step)
			continue
		}

		children[row.parentID.Int64] = append(children[row.parentID.Int64], step)
	}

	slices.Reverse(roots)

	if roots == nil {
		return []m.Step{}
	}

	return roots
}

// GetStep returns a single step without children.
func (s *SQLiteStore) GetStep(ctx context.Context, stepID int64) (m.Step, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, data_uri, created_at, test_case_id, parent_step_id
		FROM step
		WHERE id = ?`, stepID)

	result, err := scanStep(row)
	if err != nil {
		return m.Step{}, notFound(err, "step", stepID)
	}

	return result.step, nil
}

// GetImageByStepID returns the screenshot of a step.
func (s *SQLiteStore) GetImageByStepID(ctx context.Context, stepID int64) (string, error) {
	var dataURI string

	err := s.db.QueryRowContext(ctx, `SELECT data_uri FROM step WHERE id = ?`, stepID).Scan(&dataURI)
	if err != nil {
		return "", notFound(err, "step", stepID)
	}

	return dataURI, nil
}

// GetTestCase returns a test case with ignore areas and tags.
func (s *SQLiteStore) GetTestCase(ctx context.Context, id int64) (m.TestCase, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, run_id, name, ignore_areas, created_at
		FROM test_case
		WHERE id = ?`, id)

	tc, err := scanTestCase(row)
	if err != nil {
		return m.TestCase{}, notFound(err, "test case", id)
	}

	tc.Tags, err = s.tags(ctx, `
		SELECT tag.id, tag.value
		FROM tag
		JOIN test_case_tag ON test_case_tag.tag_id = tag.id
		WHERE test_case_tag.test_case_id = ?
		ORDER BY tag.id`, tc.ID)
	if err != nil {
		return m.TestCase{}, err
	}

	return tc, nil
}

// GetRunTestCases lists the test cases of a run in insertion order.
func (s *SQLiteStore) GetRunTestCases(ctx context.Context, runID int64) ([]m.TestCase, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, name, ignore_areas, created_at
		FROM test_case
		WHERE run_id = ?
		ORDER BY id`, runID)
	if err != nil {
		slog.Error("Failed to query test cases", "runID", runID, "error", err)
		return nil, fmt.Errorf("failed to query test cases: %w", err)
	}
	defer rows.Close()

	cases := make([]m.TestCase, 0)

	for rows.Next() {
		tc, err := scanTestCase(rows)
		if err != nil {
			return nil, err
		}

		cases = append(cases, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test cases: %w", err)
	}

	for i := range cases {
		cases[i].Tags, err = s.tags(ctx, `
			SELECT tag.id, tag.value
			FROM tag
			JOIN test_case_tag ON test_case_tag.tag_id = tag.id
			WHERE test_case_tag.test_case_id = ?
			ORDER BY tag.id`, cases[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return cases, nil
}

// GetRun returns a run with its tags.
func (s *SQLiteStore) GetRun(ctx context.Context, id int64) (m.Run, error) {
	var (
		run       m.Run
		createdAt int64
	)

	err := s.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM run WHERE id = ?`, id).
		Scan(&run.ID, &run.Name, &createdAt)
	if err != nil {
		return m.Run{}, notFound(err, "run", id)
	}

	run.CreatedAt = fromMillis(createdAt)

	run.Tags, err = s.runTags(ctx, run.ID)
	if err != nil {
		return m.Run{}, err
	}

	return run, nil
}

// ListRuns returns all runs, oldest first.
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]m.Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM run ORDER BY id`)
	if err != nil {
		slog.Error("Failed to list runs", "error", err)
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]m.Run, 0)

	for rows.Next() {
		var (
			run       m.Run
			createdAt int64
		)

		if err := rows.Scan(&run.ID, &run.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.CreatedAt = fromMillis(createdAt)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	for i := range runs {
		runs[i].Tags, err = s.runTags(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return runs, nil
}

// UpsertRun returns the named run, creating it and attaching tags when needed.
func (s *SQLiteStore) UpsertRun(ctx context.Context, name string, tags []string) (m.Run, error) {
	var runID int64

	err := s.runTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO run(name, created_at) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
			name, toMillis(s.now()))
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		if err := tx.QueryRowContext(ctx, `SELECT id FROM run WHERE name = ?`, name).Scan(&runID); err != nil {
			return fmt.Errorf("failed to select run: %w", err)
		}

		for _, value := range tags {
			tagID, err := upsertTag(ctx, tx, value)
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO run_tag(run_id, tag_id) VALUES (?, ?)`, runID, tagID)
			if err != nil {
				return fmt.Errorf("failed to tag run: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to upsert run", "name", name, "error", err)
		return m.Run{}, err
	}

	return s.GetRun(ctx, runID)
}

// UpsertTestCase returns the named test case of a run, creating it when absent
// and appending ignore areas it does not carry yet.
func (s *SQLiteStore) UpsertTestCase(ctx context.Context, runID int64, name string, ignore []m.Rectangle) (m.TestCase, error) {
	var caseID int64

	err := s.runTx(ctx, func(tx *sql.Tx) error {
		var stored string

		err := tx.QueryRowContext(ctx, `
			SELECT id, ignore_areas FROM test_case
			WHERE run_id = ? AND name = ?
			ORDER BY id LIMIT 1`, runID, name).Scan(&caseID, &stored)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			encoded, err := encodeAreas(mergeAreas(nil, ignore))
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx,
				`INSERT INTO test_case(run_id, name, ignore_areas, created_at) VALUES (?, ?, ?, ?)`,
				runID, name, encoded, toMillis(s.now()))
			if err != nil {
				return fmt.Errorf("failed to insert test case: %w", err)
			}

			caseID, err = result.LastInsertId()

			return err
		case err != nil:
			return fmt.Errorf("failed to select test case: %w", err)
		}

		existing, err := decodeAreas(stored)
		if err != nil {
			return err
		}

		merged := mergeAreas(existing, ignore)
		if len(merged) == len(existing) {
			return nil
		}

		encoded, err := encodeAreas(merged)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE test_case SET ignore_areas = ? WHERE id = ?`, encoded, caseID)
		if err != nil {
			return fmt.Errorf("failed to update ignore areas: %w", err)
		}

		return nil
	})
	if err != nil {
		slog.Error("Failed to upsert test case", "runID", runID, "name", name, "error", err)
		return m.TestCase{}, err
	}

	return s.GetTestCase(ctx, caseID)
}

// InsertStep stores a new step. A parent must belong to the same test case.
func (s *SQLiteStore) InsertStep(ctx context.Context, testCaseID int64, parentID *int64, name, dataURI string) (m.Step, error) {
	var stepID int64

	err := s.runTx(ctx, func(tx *sql.Tx) error {
		if parentID != nil {
			var owner int64

			err := tx.QueryRowContext(ctx, `SELECT test_case_id FROM step WHERE id = ?`, *parentID).Scan(&owner)
			if err != nil {
				return notFound(err, "parent step", *parentID)
			}

			if owner != testCaseID {
				return fmt.Errorf("parent step %d belongs to test case %d, not %d: %w",
					*parentID, owner, testCaseID, m.ErrNotFound)
			}
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO step(test_case_id, parent_step_id, name, data_uri, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			testCaseID, nullable(parentID), name, dataURI, toMillis(s.now()))
		if err != nil {
			return fmt.Errorf("failed to insert step: %w", err)
		}

		stepID, err = result.LastInsertId()

		return err
	})
	if err != nil {
		slog.Error("Failed to insert step", "testCaseID", testCaseID, "name", name, "error", err)
		return m.Step{}, err
	}

	return s.GetStep(ctx, stepID)
}

func (s *SQLiteStore) runTags(ctx context.Context, runID int64) ([]m.Tag, error) {
	return s.tags(ctx, `
		SELECT tag.id, tag.value
		FROM tag
		JOIN run_tag ON run_tag.tag_id = tag.id
		WHERE run_tag.run_id = ?
		ORDER BY tag.id`, runID)
}

func (s *SQLiteStore) tags(ctx context.Context, query string, ownerID int64) ([]m.Tag, error) {
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]m.Tag, 0)

	for rows.Next() {
		var tag m.Tag
		if err := rows.Scan(&tag.ID, &tag.Value); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}

		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// runTx executes fn inside a transaction, retrying when SQLite reports BUSY.
func (s *SQLiteStore) runTx(ctx context.Context, fn func(*sql.Tx) error) error {
	for attempt := range maxTxRetries {
		err := s.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		if !isBusy(err) || attempt == maxTxRetries-1 {
			return err
		}

		slog.Warn("Database busy, retrying transaction", "attempt", attempt+1)

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		case <-time.After(time.Duration(100*(attempt+1)) * time.Millisecond):
		}
	}

	return errors.New("transaction retries exceeded")
}

func (s *SQLiteStore) runOnce(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func upsertTag(ctx context.Context, tx *sql.Tx, value string) (int64, error) {
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO tag(value) VALUES (?)`, value); err != nil {
		return 0, fmt.Errorf("failed to insert tag: %w", err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM tag WHERE value = ?`, value).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to select tag: %w", err)
	}

	return id, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStep(row scanner) (stepRow, error) {
	var (
		result    stepRow
		createdAt int64
	)

	err := row.Scan(&result.step.ID, &result.step.Name, &result.step.DataURI, &createdAt,
		&result.step.TestCaseID, &result.parentID)
	if err != nil {
		return stepRow{}, err
	}

	result.step.CreatedAt = fromMillis(createdAt)

	if result.parentID.Valid {
		parent := result.parentID.Int64
		result.step.ParentID = &parent
	}

	return result, nil
}

func scanTestCase(row scanner) (m.TestCase, error) {
	var (
		tc        m.TestCase
		areas     string
		createdAt int64
	)

	if err := row.Scan(&tc.ID, &tc.RunID, &tc.Name, &areas, &createdAt); err != nil {
		return m.TestCase{}, err
	}

	decoded, err := decodeAreas(areas)
	if err != nil {
		return m.TestCase{}, err
	}

	tc.IgnoreAreas = decoded
	tc.CreatedAt = fromMillis(createdAt)

	return tc, nil
}

func encodeAreas(areas []m.Rectangle) (string, error) {
	encoded, err := json.Marshal(areas)
	if err != nil {
		return "", fmt.Errorf("failed to encode ignore areas: %w", err)
	}

	return string(encoded), nil
}

func decodeAreas(raw string) ([]m.Rectangle, error) {
	areas := make([]m.Rectangle, 0)
	if strings.TrimSpace(raw) == "" {
		return areas, nil
	}

	if err := json.Unmarshal([]byte(raw), &areas); err != nil {
		return nil, fmt.Errorf("failed to decode ignore areas: %w", err)
	}

	return areas, nil
}

// mergeAreas appends the areas of extra that existing does not contain yet.
func mergeAreas(existing, extra []m.Rectangle) []m.Rectangle {
	merged := make([]m.Rectangle, 0, len(existing)+len(extra))
	merged = append(merged, existing...)

	for _, area := range extra {
		area = m.Rect(area.Min.X, area.Min.Y, area.Max.X, area.Max.Y)
		if !slices.Contains(merged, area) {
			merged = append(merged, area)
		}
	}

	return merged
}

func notFound(err error, kind string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", kind, id, m.ErrNotFound)
	}

	return fmt.Errorf("failed to load %s %d: %w", kind, id, err)
}

func isBusy(err error) bool {
	msg := err.Error()

	return strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

func nullable(id *int64) any {
	if id == nil {
		return nil
	}

	return *id
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
