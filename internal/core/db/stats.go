package db

import (
	"context"
	"database/sql"
	"time"
)

// Stats represents database statistics
type Stats struct {
	Keys        int
	Exports     int
	Imports     int
	LastImport  time.Time
	SizeBytes   int64
	LastWriteAt time.Time
}

// GetStats returns comprehensive database statistics
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv").Scan(&stats.Keys); err != nil {
		return nil, err
	}
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM export_log").Scan(&stats.Exports); err != nil {
		return nil, err
	}
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM import_log").Scan(&stats.Imports); err != nil {
		return nil, err
	}

	var lastImport, lastWrite sql.NullString
	if err := db.conn.QueryRowContext(ctx, "SELECT MAX(imported_at) FROM import_log WHERE status = ?", ImportSuccess).Scan(&lastImport); err != nil {
		return nil, err
	}
	if err := db.conn.QueryRowContext(ctx, "SELECT MAX(updated_at) FROM kv").Scan(&lastWrite); err != nil {
		return nil, err
	}
	if lastImport.Valid {
		stats.LastImport = parseTime(lastImport.String)
	}
	if lastWrite.Valid {
		stats.LastWriteAt = parseTime(lastWrite.String)
	}

	// page_count * page_size works for in-memory databases too
	var pages, pageSize int64
	if err := db.conn.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pages); err != nil {
		return nil, err
	}
	if err := db.conn.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err != nil {
		return nil, err
	}
	stats.SizeBytes = pages * pageSize

	return stats, nil
}
