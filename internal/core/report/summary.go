// Package report renders plain-text summaries of study days.
package report

import (
	"fmt"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/neilberkman/zenstudy/internal/core/stats"
)

// DaySummary renders the mustache template for one day. Template fields:
// date, total, seconds, and a subjects list with name, color, duration,
// percent, archived, deleted and sessions (time, duration, memo).
func DaySummary(tmpl string, snap stats.Snapshot, date string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.UTC
	}

	var subjects []map[string]interface{}
	for _, row := range snap.SubjectBreakdown(date) {
		var sessions []map[string]interface{}
		for _, sess := range row.Sessions {
			sessions = append(sessions, map[string]interface{}{
				"time":     sess.CompletedAt().In(loc).Format("15:04"),
				"duration": stats.FormatDuration(sess.Duration),
				"memo":     sess.Memo,
			})
		}
		subjects = append(subjects, map[string]interface{}{
			"name":     row.Name,
			"color":    row.Color,
			"duration": stats.FormatDuration(row.Duration),
			"percent":  row.Percent,
			"archived": row.Archived,
			"deleted":  row.Deleted,
			"sessions": sessions,
		})
	}

	total := snap.DayTotal(date)
	data := map[string]interface{}{
		"date":     date,
		"total":    stats.FormatDuration(total),
		"seconds":  total,
		"subjects": subjects,
	}

	out, err := mustache.Render(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("render day summary: %w", err)
	}
	return out, nil
}
