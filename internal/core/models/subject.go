package models

import "errors"

// Subject is something the user studies.
type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"` // hex swatch, e.g. #FF5F5F
	Archived bool   `json:"archived"`
}

// Palette is the default set of subject swatches.
var Palette = []string{
	"#FF5F5F",
	"#5FFF95",
	"#5F9FFF",
	"#D45FFF",
	"#FFD45F",
	"#5FFFFF",
	"#FF9F5F",
	"#FFFFFF",
}

// Placeholder values shown for sessions whose subject was purged.
const (
	DeletedSubjectName  = "Deleted Subject"
	DeletedSubjectColor = "#333333"
)

// Validate checks if the subject has required fields
func (s *Subject) Validate() error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

// DefaultSubjects seeds a fresh store.
func DefaultSubjects() []Subject {
	return []Subject{
		{ID: "1", Name: "Mathematics", Color: Palette[0]},
		{ID: "2", Name: "Language", Color: Palette[1]},
	}
}
