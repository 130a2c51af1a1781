package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/db"
	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data    map[string][]byte
	failFor string
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Load(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Save(_ context.Context, key string, value []byte) error {
	if key == m.failFor {
		return errors.New("disk full")
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

var fixedNow = time.Date(2026, 3, 1, 16, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, kv KV) *Store {
	t.Helper()
	n := 0
	s := New(kv, clock.FixedClock{T: fixedNow, Loc: clock.MustLoad("Asia/Seoul")},
		WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }))
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestLoad_SeedsDefaults(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv)

	subjects := s.Subjects()
	require.Len(t, subjects, 2)
	assert.Equal(t, "Mathematics", subjects[0].Name)
	assert.Equal(t, "#FF5F5F", subjects[0].Color)
	assert.Equal(t, "Language", subjects[1].Name)
	assert.Contains(t, kv.data, KeySubjects)

	_, ok := s.LastBackup()
	assert.False(t, ok)
}

func TestLoad_DecodeError(t *testing.T) {
	kv := newMemKV()
	kv.data[KeyLogs] = []byte(`{not json`)
	s := New(kv, clock.FixedClock{T: fixedNow})
	assert.Error(t, s.Load(context.Background()))
}

func TestRecordSession(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newTestStore(t, kv)

	sess, err := s.RecordSession(ctx, "1", 1500, "limits", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "id-1", sess.ID)
	assert.Equal(t, fixedNow.UnixMilli(), sess.Timestamp)

	_, err = s.RecordSession(ctx, "2", 300, "", "2026-03-02")
	require.NoError(t, err)
	_, err = s.RecordSession(ctx, "1", 0, "", "2026-03-03")
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Logs, 2)
	assert.Equal(t, 1800, snap.DayTotal("2026-03-02"))
	assert.Equal(t, 0, snap.DayTotal("2026-03-03"))

	// Persisted immediately and reloadable.
	reloaded := newTestStore(t, kv)
	assert.Equal(t, snap, reloaded.Snapshot())
}

func TestRecordSession_Invalid(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	_, err := s.RecordSession(ctx, "1", -1, "", "2026-03-02")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.RecordSession(ctx, "", 10, "", "2026-03-02")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.RecordSession(ctx, "1", 10, "", "03/02/2026")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, clock.ErrInvalidDateKey)

	assert.Empty(t, s.Snapshot().Logs)
}

func TestRecordSession_RejectsEmptyID(t *testing.T) {
	s := New(newMemKV(), clock.FixedClock{T: fixedNow}, WithIDFunc(func() string { return "" }))
	require.NoError(t, s.Load(context.Background()))

	_, err := s.RecordSession(context.Background(), "1", 10, "", "2026-03-02")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "id is required")
	assert.Empty(t, s.Snapshot().Logs)
}

func TestRecordSession_SaveFailureLeavesStateUnchanged(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv)
	kv.failFor = KeyLogs

	_, err := s.RecordSession(context.Background(), "1", 10, "", "2026-03-02")
	require.Error(t, err)
	assert.Empty(t, s.Snapshot().Logs)
}

func TestSnapshot_IsACopy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	_, err := s.RecordSession(ctx, "1", 10, "", "2026-03-02")
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Logs[0].Sessions[0].Duration = 9999
	snap.Subjects[0].Name = "changed"

	assert.Equal(t, 10, s.Snapshot().DayTotal("2026-03-02"))
	assert.Equal(t, "Mathematics", s.Subjects()[0].Name)
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newTestStore(t, kv)

	subjects := []models.Subject{{ID: "x", Name: "Physics", Color: "#5F9FFF"}}
	logs := []models.DayLog{{Date: "2026-01-05", Sessions: []models.StudySession{{ID: "s", SubjectID: "x", Duration: 60}}}}
	require.NoError(t, s.Replace(ctx, subjects, logs))

	snap := s.Snapshot()
	assert.Equal(t, subjects, snap.Subjects)
	assert.Equal(t, logs, snap.Logs)

	reloaded := newTestStore(t, kv)
	assert.Equal(t, snap, reloaded.Snapshot())
}

func TestReplace_FailureLeavesStateUnchanged(t *testing.T) {
	kv := newMemKV()
	s := newTestStore(t, kv)
	before := s.Snapshot()
	kv.failFor = KeyLogs

	err := s.Replace(context.Background(), []models.Subject{{ID: "x", Name: "X"}}, nil)
	require.Error(t, err)
	assert.Equal(t, before, s.Snapshot())
}

func TestReplace_SQLiteBatch(t *testing.T) {
	ctx := context.Background()
	database, err := db.New(":memory:")
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	s := newTestStore(t, database)
	logs := []models.DayLog{{Date: "2026-02-01", Sessions: []models.StudySession{{ID: "a", SubjectID: "1", Duration: 42}}}}
	require.NoError(t, s.Replace(ctx, models.DefaultSubjects(), logs))

	reloaded := newTestStore(t, database)
	assert.Equal(t, 42, reloaded.Snapshot().DayTotal("2026-02-01"))
}

func TestLastBackup(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := newTestStore(t, kv)

	require.NoError(t, s.SetLastBackup(ctx, fixedNow))
	got, ok := s.LastBackup()
	require.True(t, ok)
	assert.True(t, got.Equal(fixedNow))

	reloaded := newTestStore(t, kv)
	got, ok = reloaded.LastBackup()
	require.True(t, ok)
	assert.True(t, got.Equal(fixedNow))
}
