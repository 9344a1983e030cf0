package adapter

// schema contains the DDL for the shotdiff tables.
const schema = `
CREATE TABLE IF NOT EXISTS run (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL UNIQUE,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tag (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    value TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS run_tag (
    run_id INTEGER NOT NULL,
    tag_id INTEGER NOT NULL,
    PRIMARY KEY (run_id, tag_id),
    FOREIGN KEY (run_id) REFERENCES run(id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tag(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS test_case (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id       INTEGER NOT NULL,
    name         TEXT NOT NULL,
    ignore_areas TEXT NOT NULL DEFAULT '[]',
    created_at   INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES run(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_test_case_run ON test_case(run_id, name);

CREATE TABLE IF NOT EXISTS test_case_tag (
    test_case_id INTEGER NOT NULL,
    tag_id       INTEGER NOT NULL,
    PRIMARY KEY (test_case_id, tag_id),
    FOREIGN KEY (test_case_id) REFERENCES test_case(id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tag(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS step (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    test_case_id   INTEGER NOT NULL,
    parent_step_id INTEGER,
    name           TEXT NOT NULL,
    data_uri       TEXT NOT NULL,
    created_at     INTEGER NOT NULL,
    FOREIGN KEY (test_case_id) REFERENCES test_case(id) ON DELETE CASCADE,
    FOREIGN KEY (parent_step_id) REFERENCES step(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_step_test_case ON step(test_case_id, parent_step_id);
`
