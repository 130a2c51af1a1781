package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/neilberkman/zenstudy/internal/core/models"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// AddSubject creates an active subject. An empty color takes the next
// palette entry.
func (s *Store) AddSubject(ctx context.Context, name, color string) (models.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Subject{}, fmt.Errorf("subject name is required: %w", ErrInvalidInput)
	}
	color = strings.TrimSpace(color)
	if color != "" && !hexColor.MatchString(color) {
		return models.Subject{}, fmt.Errorf("color %q is not #RRGGBB: %w", color, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if color == "" {
		color = s.palette[len(s.subjects)%len(s.palette)]
	}
	sub := models.Subject{ID: s.newID(), Name: name, Color: strings.ToUpper(color)}
	if err := sub.Validate(); err != nil {
		return models.Subject{}, fmt.Errorf("%w: subject: %w", ErrInvalidInput, err)
	}

	next := append(append([]models.Subject(nil), s.subjects...), sub)
	if err := s.saveJSON(ctx, KeySubjects, next); err != nil {
		return models.Subject{}, err
	}
	s.subjects = next
	s.logger.Info("subject added", "id", sub.ID, "name", sub.Name)
	return sub, nil
}

// ArchiveSubject hides a subject from the focus list. History is kept.
func (s *Store) ArchiveSubject(ctx context.Context, id string) (models.Subject, error) {
	return s.setArchived(ctx, id, true)
}

// RestoreSubject brings an archived subject back.
func (s *Store) RestoreSubject(ctx context.Context, id string) (models.Subject, error) {
	return s.setArchived(ctx, id, false)
}

func (s *Store) setArchived(ctx context.Context, id string, archived bool) (models.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Subject{}, fmt.Errorf("subject %s: %w", id, ErrSubjectNotFound)
	}

	next := append([]models.Subject(nil), s.subjects...)
	next[idx].Archived = archived
	if err := s.saveJSON(ctx, KeySubjects, next); err != nil {
		return models.Subject{}, err
	}
	s.subjects = next
	s.logger.Info("subject archive state changed", "id", id, "archived", archived)
	return next[idx], nil
}

// PurgeSubject deletes a subject outright. Its sessions stay and render
// as the deleted-subject placeholder.
func (s *Store) PurgeSubject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("subject %s: %w", id, ErrSubjectNotFound)
	}

	next := make([]models.Subject, 0, len(s.subjects)-1)
	next = append(next, s.subjects[:idx]...)
	next = append(next, s.subjects[idx+1:]...)
	if err := s.saveJSON(ctx, KeySubjects, next); err != nil {
		return err
	}
	s.subjects = next
	s.logger.Info("subject purged", "id", id)
	return nil
}

// Subjects returns every subject, archived included.
func (s *Store) Subjects() []models.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Subject(nil), s.subjects...)
}

// ActiveSubjects returns subjects that are not archived.
func (s *Store) ActiveSubjects() []models.Subject {
	return s.filter(false)
}

// ArchivedSubjects returns archived subjects.
func (s *Store) ArchivedSubjects() []models.Subject {
	return s.filter(true)
}

func (s *Store) filter(archived bool) []models.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Subject
	for _, sub := range s.subjects {
		if sub.Archived == archived {
			out = append(out, sub)
		}
	}
	return out
}

// FindSubject resolves an id or a case-insensitive name.
func (s *Store) FindSubject(query string) (models.Subject, error) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(query); idx >= 0 {
		return s.subjects[idx], nil
	}
	for _, sub := range s.subjects {
		if strings.EqualFold(sub.Name, query) {
			return sub, nil
		}
	}
	return models.Subject{}, fmt.Errorf("subject %q: %w", query, ErrSubjectNotFound)
}

func (s *Store) indexOf(id string) int {
	for i, sub := range s.subjects {
		if sub.ID == id {
			return i
		}
	}
	return -1
}
