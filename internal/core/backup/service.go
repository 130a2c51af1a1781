package backup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/db"
	"github.com/neilberkman/zenstudy/internal/core/store"
)

// Journal records exports and imports. *db.DB satisfies it.
type Journal interface {
	RecordExport(ctx context.Context, rec db.ExportRecord) (int64, error)
	RecordImport(ctx context.Context, rec db.ImportRecord) (int64, error)
}

// Service moves store data to and from backup files.
type Service struct {
	store   *store.Store
	journal Journal
	logger  *slog.Logger
}

// NewService creates a backup service. journal and logger may be nil.
func NewService(s *store.Store, journal Journal, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: s, journal: journal, logger: logger}
}

// ExportResult describes a written backup.
type ExportResult struct {
	Path     string
	Hash     string
	Subjects int
	Sessions int
	Bytes    int
}

// Export writes a backup into dir using the filename template and
// remembers the time as the last backup.
func (s *Service) Export(ctx context.Context, dir, filenameTmpl string) (ExportResult, error) {
	c := s.store.Clock()
	name, err := Filename(filenameTmpl, clock.TodayKey(c))
	if err != nil {
		return ExportResult{}, err
	}
	return s.ExportTo(ctx, filepath.Join(dir, name))
}

// ExportTo writes a backup to an explicit path.
func (s *Service) ExportTo(ctx context.Context, path string) (ExportResult, error) {
	c := s.store.Clock()
	doc := NewDocument(s.store.Snapshot(), c)
	data, err := Marshal(doc)
	if err != nil {
		return ExportResult{}, fmt.Errorf("encode backup: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ExportResult{}, fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write backup: %w", err)
	}

	res := ExportResult{
		Path:     path,
		Hash:     Hash(data),
		Subjects: len(doc.Subjects),
		Sessions: doc.SessionCount(),
		Bytes:    len(data),
	}

	now := c.Now()
	if err := s.store.SetLastBackup(ctx, now); err != nil {
		return res, err
	}
	if s.journal != nil {
		_, err := s.journal.RecordExport(ctx, db.ExportRecord{
			FilePath:     path,
			FileHash:     res.Hash,
			ExportedAt:   now,
			SubjectCount: res.Subjects,
			SessionCount: res.Sessions,
		})
		if err != nil {
			s.logger.Warn("failed to record export", "path", path, "error", err)
		}
	}

	s.logger.Info("backup exported", "path", path, "subjects", res.Subjects, "sessions", res.Sessions)
	return res, nil
}

// ImportResult describes a restored backup.
type ImportResult struct {
	Path       string
	Hash       string
	Subjects   int
	Sessions   int
	ExportedAt string
	Timezone   string
}

// ImportFile restores a backup file, replacing all subjects and logs.
func (s *Service) ImportFile(ctx context.Context, path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read backup: %w", err)
	}
	return s.Import(ctx, path, data)
}

// Import restores backup bytes. On any error the store is left as it was.
func (s *Service) Import(ctx context.Context, source string, data []byte) (ImportResult, error) {
	res := ImportResult{Path: source, Hash: Hash(data)}

	doc, err := Parse(data)
	if err == nil {
		err = s.store.Replace(ctx, doc.Subjects, doc.Logs)
	}
	if err != nil {
		s.journalImport(ctx, res, db.ImportFailed, err)
		s.logger.Warn("backup import failed", "path", source, "error", err)
		return ImportResult{}, err
	}

	res.Subjects = len(doc.Subjects)
	res.Sessions = doc.SessionCount()
	res.ExportedAt = doc.ExportedAt
	res.Timezone = doc.Timezone
	s.journalImport(ctx, res, db.ImportSuccess, nil)

	s.logger.Info("backup imported", "path", source, "subjects", res.Subjects, "sessions", res.Sessions)
	return res, nil
}

func (s *Service) journalImport(ctx context.Context, res ImportResult, status string, cause error) {
	if s.journal == nil {
		return
	}
	rec := db.ImportRecord{
		FilePath:         res.Path,
		FileHash:         res.Hash,
		ImportedAt:       s.store.Clock().Now(),
		SubjectsImported: res.Subjects,
		SessionsImported: res.Sessions,
		Status:           status,
	}
	if cause != nil {
		rec.ErrorMessage = cause.Error()
	}
	if _, err := s.journal.RecordImport(ctx, rec); err != nil {
		s.logger.Warn("failed to record import", "path", res.Path, "error", err)
	}
}
