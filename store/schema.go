package store

import "fmt"

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS submission_log (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    logged_at       TEXT NOT NULL DEFAULT (datetime('now','localtime')),
    date            TEXT NOT NULL,
    employee_name   TEXT NOT NULL,
    employee_id     TEXT NOT NULL DEFAULT '',
    asset_make      TEXT NOT NULL,
    asset_id        TEXT NOT NULL DEFAULT '',
    condition       TEXT NOT NULL,
    action          TEXT NOT NULL,
    attention_items TEXT NOT NULL DEFAULT '[]',
    outcome         TEXT NOT NULL,
    record_id       TEXT NOT NULL DEFAULT '',
    queue_id        TEXT NOT NULL DEFAULT '',
    detail          TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_submission_log_logged_at ON submission_log(logged_at);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS submission_log (
    id              BIGSERIAL PRIMARY KEY,
    logged_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    date            TEXT NOT NULL,
    employee_name   TEXT NOT NULL,
    employee_id     TEXT NOT NULL DEFAULT '',
    asset_make      TEXT NOT NULL,
    asset_id        TEXT NOT NULL DEFAULT '',
    condition       TEXT NOT NULL,
    action          TEXT NOT NULL,
    attention_items JSONB NOT NULL DEFAULT '[]',
    outcome         TEXT NOT NULL,
    record_id       TEXT NOT NULL DEFAULT '',
    queue_id        TEXT NOT NULL DEFAULT '',
    detail          TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_submission_log_logged_at ON submission_log(logged_at);
`

func (db *DB) migrate() error {
	var schema string
	switch db.driver {
	case "sqlite":
		schema = schemaSQLite
	case "postgres":
		schema = schemaPostgres
	default:
		return fmt.Errorf("no schema for driver: %s", db.driver)
	}
	_, err := db.Exec(schema)
	return err
}
