// Package store owns the subjects and day logs and writes them through a KV
// backend on every change.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/neilberkman/zenstudy/internal/core/stats"
)

// Store is the in-memory owner of all study data.
type Store struct {
	mu       sync.Mutex
	kv       KV
	clock    clock.Clock
	logger   *slog.Logger
	palette  []string
	newID    func() string
	subjects []models.Subject
	logs     []models.DayLog
	backup   time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPalette sets the colors handed out to subjects added without one.
func WithPalette(p []string) Option {
	return func(s *Store) {
		if len(p) > 0 {
			s.palette = p
		}
	}
}

// WithIDFunc overrides id generation.
func WithIDFunc(f func() string) Option {
	return func(s *Store) {
		if f != nil {
			s.newID = f
		}
	}
}

// New creates an empty store. Call Load before use.
func New(kv KV, c clock.Clock, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		clock:   c,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		palette: models.Palette,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clock returns the clock the store stamps sessions with.
func (s *Store) Clock() clock.Clock {
	return s.clock
}

// Load reads subjects, logs and the last backup time from the backend.
// A backend with no subjects yet is seeded with the defaults.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subjects []models.Subject
	raw, ok, err := s.kv.Load(ctx, KeySubjects)
	if err != nil {
		return fmt.Errorf("loading subjects: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &subjects); err != nil {
			return fmt.Errorf("decoding subjects: %w", err)
		}
	} else {
		subjects = models.DefaultSubjects()
		if err := s.saveJSON(ctx, KeySubjects, subjects); err != nil {
			return err
		}
		s.logger.Info("seeded default subjects", "count", len(subjects))
	}

	var logs []models.DayLog
	raw, ok, err = s.kv.Load(ctx, KeyLogs)
	if err != nil {
		return fmt.Errorf("loading logs: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &logs); err != nil {
			return fmt.Errorf("decoding logs: %w", err)
		}
	}

	var backup time.Time
	raw, ok, err = s.kv.Load(ctx, KeyLastBackup)
	if err != nil {
		return fmt.Errorf("loading last backup: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &backup); err != nil {
			s.logger.Warn("ignoring unreadable last backup time", "error", err)
			backup = time.Time{}
		}
	}

	s.subjects = subjects
	s.logs = logs
	s.backup = backup
	s.logger.Debug("store loaded", "subjects", len(subjects), "days", len(logs))
	return nil
}

// RecordSession appends a completed session to the log for dateKey,
// creating the day if needed. It is the only way history grows.
func (s *Store) RecordSession(ctx context.Context, subjectID string, duration int, memo, dateKey string) (models.StudySession, error) {
	if _, err := clock.ParseKey(dateKey); err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	sess := models.StudySession{
		ID:        s.newID(),
		SubjectID: subjectID,
		Duration:  duration,
		Timestamp: s.clock.Now().UnixMilli(),
		Memo:      memo,
	}
	if err := sess.Validate(); err != nil {
		return models.StudySession{}, fmt.Errorf("%w: session: %w", ErrInvalidInput, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneLogs(s.logs)
	idx := -1
	for i := range next {
		if next[i].Date == dateKey {
			idx = i
			break
		}
	}
	if idx < 0 {
		next = append(next, models.DayLog{Date: dateKey})
		idx = len(next) - 1
	}
	next[idx].Sessions = append(next[idx].Sessions, sess)

	if err := s.saveJSON(ctx, KeyLogs, next); err != nil {
		return models.StudySession{}, err
	}
	s.logs = next

	s.logger.Info("session recorded", "subject", subjectID, "duration", duration, "date", dateKey)
	return sess, nil
}

// Snapshot returns a copy of the current data for aggregation.
func (s *Store) Snapshot() stats.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.Snapshot{
		Subjects: append([]models.Subject(nil), s.subjects...),
		Logs:     cloneLogs(s.logs),
	}
}

// Replace swaps in a whole new data set, as an import does. Nothing
// changes in memory unless the backend accepted every write.
func (s *Store) Replace(ctx context.Context, subjects []models.Subject, logs []models.DayLog) error {
	if subjects == nil {
		subjects = []models.Subject{}
	}
	if logs == nil {
		logs = []models.DayLog{}
	}

	subjectsRaw, err := json.Marshal(subjects)
	if err != nil {
		return fmt.Errorf("encoding subjects: %w", err)
	}
	logsRaw, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("encoding logs: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if batch, ok := s.kv.(BatchKV); ok {
		err = batch.SaveAll(ctx, map[string][]byte{KeySubjects: subjectsRaw, KeyLogs: logsRaw})
	} else {
		err = s.kv.Save(ctx, KeySubjects, subjectsRaw)
		if err == nil {
			err = s.kv.Save(ctx, KeyLogs, logsRaw)
		}
	}
	if err != nil {
		return fmt.Errorf("saving replacement: %w", err)
	}

	s.subjects = append([]models.Subject(nil), subjects...)
	s.logs = cloneLogs(logs)
	s.logger.Info("store replaced", "subjects", len(subjects), "days", len(logs))
	return nil
}

// LastBackup returns when data was last exported. ok is false if never.
func (s *Store) LastBackup() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backup, !s.backup.IsZero()
}

// SetLastBackup records an export time.
func (s *Store) SetLastBackup(ctx context.Context, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.saveJSON(ctx, KeyLastBackup, t); err != nil {
		return err
	}
	s.backup = t
	return nil
}

// saveJSON must be called with mu held.
func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func cloneLogs(logs []models.DayLog) []models.DayLog {
	out := make([]models.DayLog, len(logs))
	for i, l := range logs {
		out[i] = models.DayLog{
			Date:     l.Date,
			Sessions: append([]models.StudySession(nil), l.Sessions...),
		}
	}
	return out
}
