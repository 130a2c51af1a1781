package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ExportRecord is one row of export_log.
type ExportRecord struct {
	ID           int64
	FilePath     string
	FileHash     string
	ExportedAt   time.Time
	SubjectCount int
	SessionCount int
}

// ImportRecord is one row of import_log.
type ImportRecord struct {
	ID               int64
	FilePath         string
	FileHash         string
	ImportedAt       time.Time
	SubjectsImported int
	SessionsImported int
	Status           string
	ErrorMessage     string
}

// Import statuses.
const (
	ImportSuccess = "success"
	ImportFailed  = "failed"
)

// RecordExport appends an export to the log.
func (db *DB) RecordExport(ctx context.Context, rec ExportRecord) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `
		INSERT INTO export_log (file_path, file_hash, exported_at, subject_count, session_count)
		VALUES (?, ?, ?, ?, ?)
	`, rec.FilePath, rec.FileHash, formatTime(rec.ExportedAt), rec.SubjectCount, rec.SessionCount)
	if err != nil {
		return 0, fmt.Errorf("record export: %w", err)
	}
	return res.LastInsertId()
}

// RecordImport appends an import attempt to the log.
func (db *DB) RecordImport(ctx context.Context, rec ImportRecord) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `
		INSERT INTO import_log (file_path, file_hash, imported_at, subjects_imported, sessions_imported, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.FilePath, rec.FileHash, formatTime(rec.ImportedAt), rec.SubjectsImported, rec.SessionsImported, rec.Status, rec.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("record import: %w", err)
	}
	return res.LastInsertId()
}

// ListExports returns the most recent exports first. limit <= 0 means all.
func (db *DB) ListExports(ctx context.Context, limit int) ([]ExportRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, file_path, file_hash, exported_at, subject_count, session_count
		FROM export_log
		ORDER BY exported_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ExportRecord
	for rows.Next() {
		var r ExportRecord
		var at string
		if err := rows.Scan(&r.ID, &r.FilePath, &r.FileHash, &at, &r.SubjectCount, &r.SessionCount); err != nil {
			return nil, err
		}
		r.ExportedAt = parseTime(at)
		out = append(out, r)
	}
	return out, rows.Err()
}

// LastExport returns the newest export, or ErrNotFound.
func (db *DB) LastExport(ctx context.Context) (ExportRecord, error) {
	recs, err := db.ListExports(ctx, 1)
	if err != nil {
		return ExportRecord{}, err
	}
	if len(recs) == 0 {
		return ExportRecord{}, ErrNotFound
	}
	return recs[0], nil
}

// ImportedBefore reports whether a file with this hash was already
// imported successfully.
func (db *DB) ImportedBefore(ctx context.Context, hash string) (bool, error) {
	var id int64
	err := db.conn.QueryRowContext(ctx, `
		SELECT id FROM import_log
		WHERE file_hash = ? AND status = ?
		LIMIT 1
	`, hash, ImportSuccess).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
