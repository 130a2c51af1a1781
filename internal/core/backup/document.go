// Package backup reads and writes the JSON backup file.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/neilberkman/zenstudy/internal/core/stats"
)

// Version is written into every export.
const Version = "1.0"

// DefaultFilename is used when no template is configured.
const DefaultFilename = "ZenStudy_Backup_{{date}}.json"

// ErrMalformedBackup is returned for files that are not JSON or lack
// subjects or logs.
var ErrMalformedBackup = errors.New("malformed backup")

// Document is the exported file.
type Document struct {
	Subjects   []models.Subject `json:"subjects"`
	Logs       []models.DayLog  `json:"logs"`
	Version    string           `json:"version"`
	ExportedAt string           `json:"exportedAt"`
	Timezone   string           `json:"timezone"`
}

// ExportedAtLayout always writes milliseconds, like JavaScript's toISOString.
const ExportedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// NewDocument captures a snapshot for export.
func NewDocument(snap stats.Snapshot, c clock.Clock) Document {
	doc := Document{
		Subjects:   snap.Subjects,
		Logs:       snap.Logs,
		Version:    Version,
		ExportedAt: c.Now().UTC().Format(ExportedAtLayout),
		Timezone:   c.Location().String(),
	}
	if doc.Subjects == nil {
		doc.Subjects = []models.Subject{}
	}
	if doc.Logs == nil {
		doc.Logs = []models.DayLog{}
	}
	return doc
}

// Marshal renders the document with two-space indentation.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Parse decodes a backup. Only the presence of subjects and logs is
// checked; their contents are taken as they are.
func Parse(data []byte) (Document, error) {
	var raw struct {
		Subjects   *[]models.Subject `json:"subjects"`
		Logs       *[]models.DayLog  `json:"logs"`
		Version    string            `json:"version"`
		ExportedAt string            `json:"exportedAt"`
		Timezone   string            `json:"timezone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrMalformedBackup, err)
	}
	if raw.Subjects == nil {
		return Document{}, fmt.Errorf("%w: missing subjects", ErrMalformedBackup)
	}
	if raw.Logs == nil {
		return Document{}, fmt.Errorf("%w: missing logs", ErrMalformedBackup)
	}
	return Document{
		Subjects:   *raw.Subjects,
		Logs:       *raw.Logs,
		Version:    raw.Version,
		ExportedAt: raw.ExportedAt,
		Timezone:   raw.Timezone,
	}, nil
}

// SessionCount counts sessions across all logs in the document.
func (d Document) SessionCount() int {
	n := 0
	for _, l := range d.Logs {
		n += len(l.Sessions)
	}
	return n
}

// Filename renders the filename template for dateKey. The result is
// reduced to its base name so a template cannot escape the export dir.
func Filename(tmpl, dateKey string) (string, error) {
	if strings.TrimSpace(tmpl) == "" {
		tmpl = DefaultFilename
	}
	name, err := mustache.Render(tmpl, map[string]interface{}{"date": dateKey})
	if err != nil {
		return "", fmt.Errorf("render filename template: %w", err)
	}
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("filename template %q rendered empty", tmpl)
	}
	return name, nil
}

// Hash returns the hex sha256 of a backup's bytes.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
