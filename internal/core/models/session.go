package models

import (
	"errors"
	"time"
)

// StudySession is one completed timer run. Immutable once recorded.
type StudySession struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"` // may dangle after the subject is purged
	Duration  int    `json:"duration"`  // seconds
	Timestamp int64  `json:"timestamp"` // epoch millis at completion
	Memo      string `json:"memo,omitempty"`
}

// CompletedAt returns the completion instant.
func (s StudySession) CompletedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// Validate checks if the session has required fields
func (s *StudySession) Validate() error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.SubjectID == "" {
		return errors.New("subjectId is required")
	}
	if s.Duration < 0 {
		return errors.New("duration must be non-negative")
	}
	return nil
}

// DayLog holds every session recorded under one date key.
type DayLog struct {
	Date     string         `json:"date"` // YYYY-MM-DD
	Sessions []StudySession `json:"sessions"`
}

// Total sums session durations. Always derived, never stored.
func (l DayLog) Total() int {
	total := 0
	for _, s := range l.Sessions {
		total += s.Duration
	}
	return total
}
