package stats

import (
	"testing"

	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecent(t *testing.T) {
	s := Snapshot{
		Subjects: []models.Subject{{ID: "m", Name: "Mathematics"}},
		Logs: []models.DayLog{
			{Date: "2026-03-01", Sessions: []models.StudySession{
				{ID: "a", SubjectID: "m", Duration: 10, Timestamp: 100},
				{ID: "b", SubjectID: "gone", Duration: 20, Timestamp: 200},
			}},
			{Date: "2026-03-02", Sessions: []models.StudySession{
				{ID: "c", SubjectID: "m", Duration: 30, Timestamp: 300},
			}},
		},
	}

	all := s.Recent("", 0)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Session.ID)
	assert.Equal(t, "b", all[1].Session.ID)
	assert.True(t, all[1].Deleted)
	assert.Equal(t, models.DeletedSubjectName, all[1].Subject.Name)

	limited := s.Recent("m", 1)
	require.Len(t, limited, 1)
	assert.Equal(t, "c", limited[0].Session.ID)

	assert.Equal(t, 2, s.StudyDays())
}
