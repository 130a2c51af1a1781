package models

import (
	"testing"
)

func TestStudySessionValidation(t *testing.T) {
	tests := []struct {
		name    string
		session StudySession
		wantErr bool
	}{
		{
			name:    "valid session",
			session: StudySession{ID: "s1", SubjectID: "1", Duration: 1500, Timestamp: 1772323200000},
			wantErr: false,
		},
		{
			name:    "zero duration is allowed",
			session: StudySession{ID: "s1", SubjectID: "1"},
			wantErr: false,
		},
		{
			name:    "missing ID",
			session: StudySession{SubjectID: "1", Duration: 10},
			wantErr: true,
		},
		{
			name:    "missing subject",
			session: StudySession{ID: "s1", Duration: 10},
			wantErr: true,
		},
		{
			name:    "negative duration",
			session: StudySession{ID: "s1", SubjectID: "1", Duration: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubjectValidation(t *testing.T) {
	s := Subject{ID: "1"}
	if err := s.Validate(); err == nil {
		t.Error("Validate() should fail without a name")
	}
	s.Name = "Physics"
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestDayLogTotal(t *testing.T) {
	log := DayLog{Date: "2026-03-01", Sessions: []StudySession{
		{ID: "a", SubjectID: "1", Duration: 60},
		{ID: "b", SubjectID: "2", Duration: 120},
	}}
	if got := log.Total(); got != 180 {
		t.Errorf("Total() = %d, want 180", got)
	}
	if got := (DayLog{Date: "2026-03-01"}).Total(); got != 0 {
		t.Errorf("empty Total() = %d, want 0", got)
	}
}
