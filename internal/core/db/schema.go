package db

func (db *DB) initSchema() error {
	schema := `
	-- Key/value blobs (subjects, logs, last backup)
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Import log table
	CREATE TABLE IF NOT EXISTS import_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_path TEXT NOT NULL,
		file_hash TEXT NOT NULL,
		imported_at TEXT NOT NULL,
		subjects_imported INTEGER,
		sessions_imported INTEGER,
		status TEXT CHECK(status IN ('success', 'failed')),
		error_message TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_import_log_file_hash ON import_log(file_hash);

	-- Export log table
	CREATE TABLE IF NOT EXISTS export_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		file_path TEXT NOT NULL,
		file_hash TEXT NOT NULL DEFAULT '',
		exported_at TEXT NOT NULL,
		subject_count INTEGER NOT NULL DEFAULT 0,
		session_count INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_export_log_exported_at ON export_log(exported_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}
