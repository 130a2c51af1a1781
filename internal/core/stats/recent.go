package stats

import (
	"sort"

	"github.com/neilberkman/zenstudy/internal/core/models"
)

// Entry is a session together with the day it was filed under.
type Entry struct {
	Date    string
	Session models.StudySession
	Subject models.Subject
	Deleted bool
}

// Recent returns sessions newest first, optionally limited to one subject.
// limit <= 0 returns all of them.
func (s Snapshot) Recent(subjectID string, limit int) []Entry {
	var out []Entry
	for _, l := range s.Logs {
		for _, sess := range l.Sessions {
			if subjectID != "" && sess.SubjectID != subjectID {
				continue
			}
			sub, ok := s.Subject(sess.SubjectID)
			out = append(out, Entry{Date: l.Date, Session: sess, Subject: sub, Deleted: !ok})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Session.Timestamp > out[j].Session.Timestamp
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// StudyDays counts days with a non-zero total.
func (s Snapshot) StudyDays() int {
	n := 0
	for _, l := range s.Logs {
		if l.Total() > 0 {
			n++
		}
	}
	return n
}
