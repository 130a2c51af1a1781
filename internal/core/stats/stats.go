// Package stats derives study totals and visualization buckets from day logs.
// Every function is pure and recomputes from the snapshot it is given.
package stats

import (
	"math"

	"github.com/neilberkman/zenstudy/internal/core/models"
)

const (
	// MinRangeMax floors RangeMax so near-empty windows don't produce giant bars.
	MinRangeMax = 3600

	hour = 3600
)

// Snapshot is a read-only view over the store's data.
type Snapshot struct {
	Logs     []models.DayLog
	Subjects []models.Subject
}

// SubjectShare is one row of a day's per-subject breakdown.
type SubjectShare struct {
	SubjectID string
	Name      string
	Color     string
	Archived  bool
	Deleted   bool
	Duration  int
	Percent   int
	Sessions  []models.StudySession
}

// Log returns the day log for date, if any.
func (s Snapshot) Log(date string) (models.DayLog, bool) {
	for _, l := range s.Logs {
		if l.Date == date {
			return l, true
		}
	}
	return models.DayLog{}, false
}

// DayTotal returns total seconds studied on date.
func (s Snapshot) DayTotal(date string) int {
	l, ok := s.Log(date)
	if !ok {
		return 0
	}
	return l.Total()
}

// SubjectDayTotal returns seconds studied on date for one subject.
func (s Snapshot) SubjectDayTotal(date, subjectID string) int {
	l, ok := s.Log(date)
	if !ok {
		return 0
	}
	total := 0
	for _, sess := range l.Sessions {
		if sess.SubjectID == subjectID {
			total += sess.Duration
		}
	}
	return total
}

// Subject resolves subject metadata, falling back to the deleted placeholder.
func (s Snapshot) Subject(id string) (models.Subject, bool) {
	for _, sub := range s.Subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return models.Subject{
		ID:    id,
		Name:  models.DeletedSubjectName,
		Color: models.DeletedSubjectColor,
	}, false
}

// SubjectBreakdown groups a day's sessions by subject in first-occurrence order.
// Subjects with no time are omitted; an empty day yields no rows.
func (s Snapshot) SubjectBreakdown(date string) []SubjectShare {
	l, ok := s.Log(date)
	if !ok {
		return nil
	}

	index := make(map[string]int)
	var shares []SubjectShare
	for _, sess := range l.Sessions {
		i, seen := index[sess.SubjectID]
		if !seen {
			sub, found := s.Subject(sess.SubjectID)
			shares = append(shares, SubjectShare{
				SubjectID: sess.SubjectID,
				Name:      sub.Name,
				Color:     sub.Color,
				Archived:  sub.Archived,
				Deleted:   !found,
			})
			i = len(shares) - 1
			index[sess.SubjectID] = i
		}
		shares[i].Duration += sess.Duration
		shares[i].Sessions = append(shares[i].Sessions, sess)
	}

	rows := shares[:0]
	total := 0
	for _, sh := range shares {
		if sh.Duration > 0 {
			rows = append(rows, sh)
			total += sh.Duration
		}
	}
	if total == 0 {
		return nil
	}

	for i := range rows {
		rows[i].Percent = Percent(rows[i].Duration, total)
	}
	return rows
}

// Percent returns part/total*100 rounded to the nearest integer, 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// IntensityBucket maps a day's total to a heatmap level 0..4.
func IntensityBucket(seconds int) int {
	switch {
	case seconds <= 0:
		return 0
	case seconds < hour:
		return 1
	case seconds < 2*hour:
		return 2
	case seconds < 4*hour:
		return 3
	default:
		return 4
	}
}

// RangeMax returns the largest day total across dates, never below MinRangeMax.
func (s Snapshot) RangeMax(dates []string) int {
	max := MinRangeMax
	for _, d := range dates {
		if t := s.DayTotal(d); t > max {
			max = t
		}
	}
	return max
}

// TotalSeconds sums every session across all logs.
func (s Snapshot) TotalSeconds() int {
	total := 0
	for _, l := range s.Logs {
		total += l.Total()
	}
	return total
}

// SessionCount counts every recorded session.
func (s Snapshot) SessionCount() int {
	n := 0
	for _, l := range s.Logs {
		n += len(l.Sessions)
	}
	return n
}
