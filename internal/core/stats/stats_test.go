package stats

import (
	"math/rand"
	"testing"

	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sess(id, subjectID string, duration int) models.StudySession {
	return models.StudySession{ID: id, SubjectID: subjectID, Duration: duration}
}

func testSnapshot() Snapshot {
	return Snapshot{
		Subjects: []models.Subject{
			{ID: "math", Name: "Mathematics", Color: "#FF5F5F"},
			{ID: "lang", Name: "Language", Color: "#5FFF95", Archived: true},
		},
		Logs: []models.DayLog{
			{Date: "2026-03-01", Sessions: []models.StudySession{
				sess("a", "lang", 600),
				sess("b", "math", 1800),
				sess("c", "lang", 600),
				sess("d", "math", 0),
			}},
			{Date: "2026-03-02", Sessions: []models.StudySession{
				sess("e", "math", 0),
			}},
		},
	}
}

func TestDayTotal(t *testing.T) {
	s := testSnapshot()
	assert.Equal(t, 3000, s.DayTotal("2026-03-01"))
	assert.Equal(t, 0, s.DayTotal("2026-03-02"))
	assert.Equal(t, 0, s.DayTotal("2026-01-01"))
}

func TestDayTotal_OrderIndependent(t *testing.T) {
	durations := []int{5, 3600, 0, 42, 900, 1, 7200}
	want := 0
	for _, d := range durations {
		want += d
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		r.Shuffle(len(durations), func(a, b int) { durations[a], durations[b] = durations[b], durations[a] })
		var sessions []models.StudySession
		for j, d := range durations {
			sessions = append(sessions, sess(string(rune('a'+j)), "math", d))
		}
		s := Snapshot{Logs: []models.DayLog{{Date: "2026-05-05", Sessions: sessions}}}
		require.Equal(t, want, s.DayTotal("2026-05-05"))
	}
}

func TestSubjectBreakdown(t *testing.T) {
	s := testSnapshot()
	rows := s.SubjectBreakdown("2026-03-01")
	require.Len(t, rows, 2)

	// First-occurrence order: lang appeared first.
	assert.Equal(t, "lang", rows[0].SubjectID)
	assert.Equal(t, "Language", rows[0].Name)
	assert.True(t, rows[0].Archived)
	assert.Equal(t, 1200, rows[0].Duration)
	assert.Equal(t, 40, rows[0].Percent)
	assert.Len(t, rows[0].Sessions, 2)

	assert.Equal(t, "math", rows[1].SubjectID)
	assert.Equal(t, 1800, rows[1].Duration)
	assert.Equal(t, 60, rows[1].Percent)

	sum := 0
	for _, r := range rows {
		assert.NotZero(t, r.Duration)
		sum += r.Duration
	}
	assert.Equal(t, s.DayTotal("2026-03-01"), sum)
}

func TestSubjectBreakdown_ZeroDay(t *testing.T) {
	s := testSnapshot()
	assert.Empty(t, s.SubjectBreakdown("2026-03-02"))
	assert.Empty(t, s.SubjectBreakdown("2026-12-25"))
}

func TestSubjectBreakdown_PurgedSubject(t *testing.T) {
	s := Snapshot{
		Subjects: []models.Subject{{ID: "math", Name: "Mathematics"}},
		Logs: []models.DayLog{{Date: "2026-04-01", Sessions: []models.StudySession{
			sess("x", "gone", 1234),
		}}},
	}

	rows := s.SubjectBreakdown("2026-04-01")
	require.Len(t, rows, 1)
	assert.Equal(t, models.DeletedSubjectName, rows[0].Name)
	assert.Equal(t, models.DeletedSubjectColor, rows[0].Color)
	assert.True(t, rows[0].Deleted)
	assert.Equal(t, 1234, rows[0].Duration)
	assert.Equal(t, 100, rows[0].Percent)
}

func TestSubjectDayTotal(t *testing.T) {
	s := testSnapshot()
	assert.Equal(t, 1800, s.SubjectDayTotal("2026-03-01", "math"))
	assert.Equal(t, 0, s.SubjectDayTotal("2026-03-01", "none"))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(10, 0))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(5, 5))
}

func TestIntensityBucket(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{1, 1},
		{3599, 1},
		{3600, 2},
		{7199, 2},
		{7200, 3},
		{14399, 3},
		{14400, 4},
		{100000, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IntensityBucket(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestIntensityBucket_Monotonic(t *testing.T) {
	prev := IntensityBucket(0)
	for s := 0; s <= 5*3600; s += 7 {
		b := IntensityBucket(s)
		require.GreaterOrEqual(t, b, prev, "seconds=%d", s)
		prev = b
	}
}

func TestRangeMax(t *testing.T) {
	s := testSnapshot()
	assert.Equal(t, MinRangeMax, s.RangeMax([]string{"2026-03-01", "2026-03-02"}))
	assert.Equal(t, MinRangeMax, s.RangeMax(nil))

	s.Logs = append(s.Logs, models.DayLog{Date: "2026-03-03", Sessions: []models.StudySession{sess("z", "math", 9000)}})
	assert.Equal(t, 9000, s.RangeMax([]string{"2026-03-01", "2026-03-03"}))
}

func TestTotals(t *testing.T) {
	s := testSnapshot()
	assert.Equal(t, 3000, s.TotalSeconds())
	assert.Equal(t, 5, s.SessionCount())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "01:05", FormatDuration(65))
	assert.Equal(t, "01:00:00", FormatDuration(3600))
	assert.Equal(t, "10:02:03", FormatDuration(36123))
}
