package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/neilberkman/zenstudy/internal/core/backup"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/config"
	"github.com/neilberkman/zenstudy/internal/core/models"
	"github.com/neilberkman/zenstudy/internal/core/store"
	"github.com/neilberkman/zenstudy/internal/core/timer"
)

type viewMode int

const (
	focusView viewMode = iota
	timerView
	historyView
	archiveView
	backupView
	addSubjectView
	helpView
)

type historyLevel int

const (
	yearLevel historyLevel = iota
	monthLevel
	dayLevel
)

// Deps are the services the TUI drives.
type Deps struct {
	Store  *store.Store
	Backup *backup.Service
	Config *config.Config
	Logger *slog.Logger
}

type Model struct {
	store  *store.Store
	backup *backup.Service
	cfg    *config.Config
	clock  clock.Clock
	logger *slog.Logger

	mode     viewMode
	prevMode viewMode
	width    int
	height   int
	err      error
	status   string
	help     help.Model

	// Focus tab
	subjects list.Model

	// Timer
	timer        *timer.Timer
	timerSubject models.Subject
	tickGen      int
	memo         textinput.Model
	memoFocused  bool

	// History tab
	histLevel historyLevel
	histYear  int
	histMonth time.Month
	histDay   int
	viewport  viewport.Model

	// Archive
	archiveCursor int
	confirmPurge  bool

	// Backup
	importInput   textinput.Model
	importing     bool
	confirmImport bool

	// Add subject
	nameInput textinput.Model
	colorIdx  int
}

func New(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Defaults("")
	}

	c := deps.Store.Clock()
	now := c.Now().In(c.Location())

	memo := textinput.New()
	memo.Placeholder = "What are you working on?"
	memo.CharLimit = 500

	importInput := textinput.New()
	importInput.Placeholder = "path/to/ZenStudy_Backup.json"

	nameInput := textinput.New()
	nameInput.Placeholder = "Subject name"
	nameInput.CharLimit = 60

	m := Model{
		store:       deps.Store,
		backup:      deps.Backup,
		cfg:         cfg,
		clock:       c,
		logger:      logger,
		mode:        focusView,
		help:        help.New(),
		memo:        memo,
		importInput: importInput,
		nameInput:   nameInput,
		histYear:    now.Year(),
		histMonth:   now.Month(),
		histDay:     now.Day(),
	}
	m.subjects = createSubjectList(nil, 0, 0)
	m.refreshSubjects()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.subjects.SetSize(msg.Width, m.subjectListHeight())
		if m.mode == historyView && m.histLevel == dayLevel {
			m.viewport = m.createDayViewport()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Text inputs swallow everything but their own control keys.
		if m.capturingText() {
			return m.updateMode(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			if m.mode == focusView || m.mode == historyView {
				return m, tea.Quit
			}
		case key.Matches(msg, keys.Help) && m.mode != timerView && m.mode != helpView:
			m.prevMode = m.mode
			m.mode = helpView
			return m, nil
		}

		return m.updateMode(msg)

	case tickMsg:
		return m.updateTick(msg)

	case sessionRecordedMsg:
		m.refreshSubjects()
		m.status = "Recorded " + formatDuration(msg.session.Duration) + " of " + msg.subjectName
		m.err = nil
		return m, nil

	case subjectsChangedMsg:
		m.refreshSubjects()
		m.status = msg.status
		m.err = nil
		return m, nil

	case exportDoneMsg:
		m.status = "Exported to " + msg.result.Path
		m.err = nil
		return m, nil

	case importDoneMsg:
		m.refreshSubjects()
		m.status = "Restored " + pluralize(msg.result.Subjects, "subject") + " and " + pluralize(msg.result.Sessions, "session")
		m.err = nil
		m.importing = false
		m.importInput.Blur()
		m.importInput.SetValue("")
		return m, nil

	case copiedMsg:
		m.status = "Copied " + msg.date + " summary to clipboard"
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		m.logger.Error("tui action failed", "error", msg.err)
		return m, nil
	}

	return m, nil
}

func (m Model) updateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case focusView:
		return m.updateFocus(msg)
	case timerView:
		return m.updateTimer(msg)
	case historyView:
		return m.updateHistory(msg)
	case archiveView:
		return m.updateArchive(msg)
	case backupView:
		return m.updateBackup(msg)
	case addSubjectView:
		return m.updateAddSubject(msg)
	case helpView:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m Model) capturingText() bool {
	switch m.mode {
	case timerView:
		return m.memoFocused
	case backupView:
		return m.importing
	case addSubjectView:
		return true
	}
	return false
}

func (m Model) View() string {
	var body string
	switch m.mode {
	case focusView:
		body = m.viewFocus()
	case timerView:
		body = m.viewTimer()
	case historyView:
		body = m.viewHistory()
	case archiveView:
		body = m.viewArchive()
	case backupView:
		body = m.viewBackup()
	case addSubjectView:
		body = m.viewAddSubject()
	case helpView:
		return m.viewHelp()
	}

	footer := m.help.ShortHelpView(keys.shortHelp(m.mode))
	if m.err != nil {
		footer = errorStyle.Render("Error: "+m.err.Error()) + "\n" + footer
	} else if m.status != "" {
		footer = statusStyle.Render(m.status) + "\n" + footer
	}
	return body + "\n\n" + footer
}

func (m Model) todayKey() string {
	return clock.TodayKey(m.clock)
}

func (m Model) subjectListHeight() int {
	h := m.height - 16 // header, activity chart and footer
	if h < 4 {
		h = 4
	}
	return h
}
