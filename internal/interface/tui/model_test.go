package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/neilberkman/zenstudy/internal/core/backup"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/config"
	"github.com/neilberkman/zenstudy/internal/core/db"
	"github.com/neilberkman/zenstudy/internal/core/store"
	"github.com/neilberkman/zenstudy/internal/core/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 01:30 in Seoul.
var testNow = time.Date(2026, 3, 1, 16, 30, 0, 0, time.UTC)

const testToday = "2026-03-02"

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	database, err := db.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	c := clock.FixedClock{T: testNow, Loc: clock.MustLoad("Asia/Seoul")}
	st := store.New(database, c)
	require.NoError(t, st.Load(context.Background()))

	cfg := config.Defaults(t.TempDir())
	m := New(Deps{
		Store:  st,
		Backup: backup.NewService(st, database, nil),
		Config: cfg,
	})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}), st
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func startTimer(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := press(t, m, "enter")
	require.Equal(t, timerView, m.mode)
	require.NotNil(t, cmd)
	require.NotNil(t, m.timer)
	return m
}

func TestStartTimer(t *testing.T) {
	m, _ := newTestModel(t)
	m = startTimer(t, m)

	assert.Equal(t, "Mathematics", m.timerSubject.Name)
	assert.Equal(t, timer.Running, m.timer.State())
	assert.Equal(t, 0, m.timer.Elapsed())
}

func TestTick_CurrentGenerationAdvances(t *testing.T) {
	m, _ := newTestModel(t)
	m = startTimer(t, m)

	next, cmd := m.Update(tickMsg{gen: m.tickGen})
	m = next.(Model)
	assert.Equal(t, 1, m.timer.Elapsed())
	assert.NotNil(t, cmd, "running timer reschedules its tick")
}

func TestTick_StaleGenerationDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m = startTimer(t, m)

	next, cmd := m.Update(tickMsg{gen: m.tickGen - 1})
	m = next.(Model)
	assert.Equal(t, 0, m.timer.Elapsed())
	assert.Nil(t, cmd)
}

func TestPause_InFlightTickIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = startTimer(t, m)
	m = update(t, m, tickMsg{gen: m.tickGen})
	inFlight := m.tickGen

	m, cmd := press(t, m, " ")
	assert.Nil(t, cmd)
	assert.Equal(t, timer.Paused, m.timer.State())

	m = update(t, m, tickMsg{gen: inFlight})
	m = update(t, m, tickMsg{gen: m.tickGen})
	assert.Equal(t, 1, m.timer.Elapsed())

	m, cmd = press(t, m, " ")
	assert.Equal(t, timer.Running, m.timer.State())
	assert.NotNil(t, cmd)
	m = update(t, m, tickMsg{gen: m.tickGen})
	assert.Equal(t, 2, m.timer.Elapsed())
}

func TestFinish_RecordsSession(t *testing.T) {
	m, st := newTestModel(t)
	m = startTimer(t, m)
	for i := 0; i < 90; i++ {
		m = update(t, m, tickMsg{gen: m.tickGen})
	}

	m, _ = press(t, m, "m")
	require.True(t, m.memoFocused)
	for _, r := range "chapter 3" {
		m, _ = press(t, m, string(r))
	}
	m, _ = press(t, m, "enter")
	require.False(t, m.memoFocused)

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, focusView, m.mode)
	assert.Nil(t, m.timer)

	msg := cmd()
	recorded, ok := msg.(sessionRecordedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 90, recorded.session.Duration)
	assert.Equal(t, "chapter 3", recorded.session.Memo)

	m = update(t, m, msg)
	assert.Contains(t, m.status, "01:30")

	snap := st.Snapshot()
	assert.Equal(t, 90, snap.DayTotal(testToday))
}

func TestFinish_ZeroElapsedDiscards(t *testing.T) {
	m, st := newTestModel(t)
	m = startTimer(t, m)

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, focusView, m.mode)
	assert.Equal(t, "Nothing to record", m.status)
	assert.Empty(t, st.Snapshot().Logs)
}

func TestDiscard(t *testing.T) {
	m, st := newTestModel(t)
	m = startTimer(t, m)
	gen := m.tickGen
	m = update(t, m, tickMsg{gen: gen})

	m, cmd := press(t, m, "x")
	assert.Nil(t, cmd)
	assert.Equal(t, focusView, m.mode)
	assert.Nil(t, m.timer)
	assert.Empty(t, st.Snapshot().Logs)

	// A tick scheduled before the discard is a no-op.
	m = update(t, m, tickMsg{gen: gen + 1})
	assert.Nil(t, m.timer)
}

func TestAddSubject(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(t, m, "+")
	require.Equal(t, addSubjectView, m.mode)
	for _, r := range "Physics" {
		m, _ = press(t, m, string(r))
	}
	m, _ = press(t, m, "tab")

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, focusView, m.mode)

	msg := cmd()
	_, ok := msg.(subjectsChangedMsg)
	require.True(t, ok, "got %T", msg)
	m = update(t, m, msg)

	sub, err := st.FindSubject("physics")
	require.NoError(t, err)
	assert.Equal(t, m.cfg.Palette[3], sub.Color)
	assert.Len(t, m.subjects.Items(), 3)
}

func TestArchiveAndRestore(t *testing.T) {
	m, st := newTestModel(t)

	m, cmd := press(t, m, "a")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	require.Len(t, st.ArchivedSubjects(), 1)
	assert.Len(t, m.subjects.Items(), 1)

	m, _ = press(t, m, "A")
	require.Equal(t, archiveView, m.mode)
	assert.Contains(t, m.View(), "Mathematics")

	m, cmd = press(t, m, "r")
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.Empty(t, st.ArchivedSubjects())
	assert.Len(t, m.subjects.Items(), 2)
}

func TestPurge_RequiresConfirmation(t *testing.T) {
	m, st := newTestModel(t)
	m, cmd := press(t, m, "a")
	m = update(t, m, cmd())
	m, _ = press(t, m, "A")

	m, cmd = press(t, m, "D")
	assert.Nil(t, cmd)
	assert.True(t, m.confirmPurge)
	assert.Contains(t, m.View(), "Logs will become generic")

	m, cmd = press(t, m, "n")
	assert.Nil(t, cmd)
	assert.False(t, m.confirmPurge)
	assert.Len(t, st.ArchivedSubjects(), 1)

	m, _ = press(t, m, "D")
	m, cmd = press(t, m, "y")
	require.NotNil(t, cmd)
	_ = update(t, m, cmd())
	assert.Empty(t, st.ArchivedSubjects())
	assert.Len(t, st.Subjects(), 1)
}

func TestHistoryNavigation(t *testing.T) {
	m, st := newTestModel(t)
	_, err := st.RecordSession(context.Background(), st.Subjects()[0].ID, 5400, "proofs", testToday)
	require.NoError(t, err)

	m, _ = press(t, m, "tab")
	require.Equal(t, historyView, m.mode)
	assert.Equal(t, yearLevel, m.histLevel)
	assert.Equal(t, 2026, m.histYear)
	assert.Equal(t, time.March, m.histMonth)

	// No data before 2026 and the start year is 2026.
	m, _ = press(t, m, "[")
	assert.Equal(t, 2026, m.histYear)
	m, _ = press(t, m, "]")
	assert.Equal(t, 2026, m.histYear)

	m, _ = press(t, m, "enter")
	require.Equal(t, monthLevel, m.histLevel)
	assert.Equal(t, testToday, m.histDate())

	m, _ = press(t, m, "enter")
	require.Equal(t, dayLevel, m.histLevel)
	view := m.View()
	assert.Contains(t, view, "Mathematics")
	assert.Contains(t, view, "proofs")
	assert.Contains(t, view, "01:30:00")

	m, _ = press(t, m, "esc")
	assert.Equal(t, monthLevel, m.histLevel)
	m, _ = press(t, m, "h")
	assert.Equal(t, "2026-03-01", m.histDate())
	m, _ = press(t, m, "esc")
	assert.Equal(t, yearLevel, m.histLevel)

	m, _ = press(t, m, "tab")
	assert.Equal(t, focusView, m.mode)
}

func TestHelpReturnsToPreviousMode(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "?")
	require.Equal(t, helpView, m.mode)
	assert.Contains(t, m.View(), "HISTORY")

	m, _ = press(t, m, "?")
	assert.Equal(t, historyView, m.mode)
}

func TestShiftMonth(t *testing.T) {
	assert.Equal(t, time.December, shiftMonth(time.January, -1))
	assert.Equal(t, time.January, shiftMonth(time.December, 1))
	assert.Equal(t, time.May, shiftMonth(time.January, 4))
	assert.Equal(t, time.September, shiftMonth(time.January, -4))
}

func TestImport_RequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	m, st := newTestModel(t)

	path := filepath.Join(t.TempDir(), "backup.json")
	_, err := m.backup.ExportTo(ctx, path)
	require.NoError(t, err)
	_, err = st.AddSubject(ctx, "Physics", "")
	require.NoError(t, err)
	require.Len(t, st.Subjects(), 3)

	m, _ = press(t, m, "b")
	require.Equal(t, backupView, m.mode)
	m, _ = press(t, m, "i")
	require.True(t, m.importing)
	m.importInput.SetValue(path)

	m, cmd := press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.True(t, m.confirmImport)
	assert.Contains(t, m.View(), "overwrite all subjects and sessions")

	m, _ = press(t, m, "n")
	assert.False(t, m.confirmImport)
	assert.Equal(t, "Import cancelled", m.status)
	assert.Len(t, st.Subjects(), 3)

	m, _ = press(t, m, "enter")
	m, cmd = press(t, m, "y")
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(importDoneMsg)
	require.True(t, ok, "got %T", msg)
	m = update(t, m, msg)

	assert.False(t, m.importing)
	assert.Len(t, st.Subjects(), 2)
	assert.Len(t, m.subjects.Items(), 2)
}
