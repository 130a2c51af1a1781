package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize/english"
	"github.com/neilberkman/zenstudy/internal/core/backup"
	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/neilberkman/zenstudy/internal/core/report"
	"github.com/neilberkman/zenstudy/internal/core/stats"
	"github.com/neilberkman/zenstudy/internal/core/store"
	"github.com/neilberkman/zenstudy/internal/core/timer"
)

type errMsg struct {
	err error
}

// tickMsg carries the generation it was scheduled under; ticks from an
// older generation are dropped.
type tickMsg struct {
	gen int
}

type sessionRecordedMsg struct {
	session     models.StudySession
	subjectName string
}

type subjectsChangedMsg struct {
	status string
}

type exportDoneMsg struct {
	result backup.ExportResult
}

type importDoneMsg struct {
	result backup.ImportResult
}

type copiedMsg struct {
	date string
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func recordSession(st *store.Store, c timer.Completion, subjectName, date string) tea.Cmd {
	return func() tea.Msg {
		sess, err := st.RecordSession(context.Background(), c.SubjectID, c.Duration, c.Memo, date)
		if err != nil {
			return errMsg{err}
		}
		return sessionRecordedMsg{session: sess, subjectName: subjectName}
	}
}

func addSubject(st *store.Store, name, color string) tea.Cmd {
	return func() tea.Msg {
		sub, err := st.AddSubject(context.Background(), name, color)
		if err != nil {
			return errMsg{err}
		}
		return subjectsChangedMsg{status: "Added " + sub.Name}
	}
}

func archiveSubject(st *store.Store, sub models.Subject) tea.Cmd {
	return func() tea.Msg {
		if _, err := st.ArchiveSubject(context.Background(), sub.ID); err != nil {
			return errMsg{err}
		}
		return subjectsChangedMsg{status: "Archived " + sub.Name}
	}
}

func restoreSubject(st *store.Store, sub models.Subject) tea.Cmd {
	return func() tea.Msg {
		if _, err := st.RestoreSubject(context.Background(), sub.ID); err != nil {
			return errMsg{err}
		}
		return subjectsChangedMsg{status: "Restored " + sub.Name}
	}
}

func purgeSubject(st *store.Store, sub models.Subject) tea.Cmd {
	return func() tea.Msg {
		if err := st.PurgeSubject(context.Background(), sub.ID); err != nil {
			return errMsg{err}
		}
		return subjectsChangedMsg{status: "Deleted " + sub.Name + "; its sessions now show as " + models.DeletedSubjectName}
	}
}

func exportBackup(svc *backup.Service, dir, filenameTmpl string) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.Export(context.Background(), dir, filenameTmpl)
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{result: res}
	}
}

func importBackup(svc *backup.Service, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.ImportFile(context.Background(), path)
		if err != nil {
			return errMsg{err}
		}
		return importDoneMsg{result: res}
	}
}

func copySummary(tmpl string, snap stats.Snapshot, date string, loc *time.Location) tea.Cmd {
	return func() tea.Msg {
		text, err := report.DaySummary(tmpl, snap, date, loc)
		if err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err}
		}
		return copiedMsg{date: date}
	}
}

func formatDuration(seconds int) string {
	return stats.FormatDuration(seconds)
}

func pluralize(n int, singular string) string {
	return english.Plural(n, singular, "")
}
