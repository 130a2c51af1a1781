package store

import (
	"context"
	"testing"

	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSubject(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	sub, err := s.AddSubject(ctx, "  Physics  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Physics", sub.Name)
	assert.Equal(t, "#5F9FFF", sub.Color, "third subject takes the third palette color")
	assert.False(t, sub.Archived)

	sub, err = s.AddSubject(ctx, "Chemistry", "#abcdef")
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", sub.Color)

	assert.Len(t, s.ActiveSubjects(), 4)
}

func TestAddSubject_Invalid(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	_, err := s.AddSubject(ctx, "   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.AddSubject(ctx, "Art", "red")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Len(t, s.Subjects(), 2)
}

func TestAddSubject_RejectsEmptyID(t *testing.T) {
	s := New(newMemKV(), clock.FixedClock{T: fixedNow}, WithIDFunc(func() string { return "" }))
	require.NoError(t, s.Load(context.Background()))

	_, err := s.AddSubject(context.Background(), "Physics", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, s.Subjects(), 2)
}

func TestArchiveRestore(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	sub, err := s.ArchiveSubject(ctx, "2")
	require.NoError(t, err)
	assert.True(t, sub.Archived)
	assert.Len(t, s.ActiveSubjects(), 1)
	require.Len(t, s.ArchivedSubjects(), 1)
	assert.Equal(t, "Language", s.ArchivedSubjects()[0].Name)

	sub, err = s.RestoreSubject(ctx, "2")
	require.NoError(t, err)
	assert.False(t, sub.Archived)
	assert.Empty(t, s.ArchivedSubjects())

	_, err = s.ArchiveSubject(ctx, "nope")
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestPurgeSubject_KeepsSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	_, err := s.RecordSession(ctx, "2", 900, "", "2026-03-02")
	require.NoError(t, err)
	require.NoError(t, s.PurgeSubject(ctx, "2"))

	_, err = s.FindSubject("2")
	assert.ErrorIs(t, err, ErrSubjectNotFound)

	rows := s.Snapshot().SubjectBreakdown("2026-03-02")
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Deleted)
	assert.Equal(t, 100, rows[0].Percent)

	assert.ErrorIs(t, s.PurgeSubject(ctx, "2"), ErrSubjectNotFound)
}

func TestFindSubject(t *testing.T) {
	s := newTestStore(t, newMemKV())

	sub, err := s.FindSubject("1")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", sub.Name)

	sub, err = s.FindSubject(" language ")
	require.NoError(t, err)
	assert.Equal(t, "2", sub.ID)

	_, err = s.FindSubject("history")
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}
