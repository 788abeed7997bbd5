package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/idid/internal/clock"
	"github.com/faizmokh/idid/internal/dates"
	"github.com/faizmokh/idid/internal/editor"
	"github.com/faizmokh/idid/internal/files"
	"github.com/faizmokh/idid/internal/logbook"
)

// Model owns Bubble Tea state for the day browser.
type Model struct {
	ctx     context.Context
	manager *files.Manager
	reader  *logbook.Reader
	writer  *logbook.Writer
	clk     clock.Clock

	currentDate dates.Date
	records     []logbook.Record
	selected    int

	mode       mode
	input      textinput.Model
	help       help.Model
	inputLabel string
	selectLast bool

	// faultLine is the first line that failed validation on the last load, or 0.
	faultLine int

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeGoto
)

type dayLoadedMsg struct {
	date    dates.Date
	records []logbook.Record
	err     error
}

type appendResultMsg struct {
	entry logbook.Entry
	err   error
}

type editorDoneMsg struct {
	err error
}

// NewModel seeds a Bubble Tea model with required collaborators. Days are
// decided in the clock's location.
func NewModel(ctx context.Context, manager *files.Manager, clk clock.Clock) Model {
	applyColorProfilePreference()

	now := clk.Now()
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 512

	return Model{
		ctx:         ctx,
		manager:     manager,
		reader:      logbook.NewReader(manager).In(now.Location()),
		writer:      logbook.NewWriter(manager),
		clk:         clk,
		currentDate: dates.Of(now),
		input:       input,
		help:        newHelp(),
		mode:        modeNormal,
		loading:     true,
		statusLine:  "Loading today's entries...",
	}
}

// Init loads today.
func (m Model) Init() tea.Cmd {
	return m.loadDayCmd(m.currentDate)
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	case appendResultMsg:
		return m.handleAppendResult(msg)
	case editorDoneMsg:
		return m.handleEditorDone(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.down):
		if m.selected < len(m.records)-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected entry %d of %d", m.selected+1, len(m.records))
			m.errorLine = ""
		}
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected entry %d of %d", m.selected+1, len(m.records))
			m.errorLine = ""
		}
	case key.Matches(msg, keys.prev):
		return m.gotoDate(m.currentDate.AddDays(-1))
	case key.Matches(msg, keys.next):
		return m.gotoDate(m.currentDate.AddDays(1))
	case key.Matches(msg, keys.today):
		return m.gotoDate(m.today())
	case key.Matches(msg, keys.reload):
		return m.reload()
	case key.Matches(msg, keys.add):
		return m.beginInput(modeAdd, "New entry (text, optionally starting with @WHEN such as @15 or @9:30am):")
	case key.Matches(msg, keys.goTo):
		return m.beginInput(modeGoto, "Go to date (today, 3, fri, 04-02, 2024-04-02 ...):")
	case key.Matches(msg, keys.start):
		entry := logbook.Entry{Time: m.clk.Now(), Text: logbook.StartMarker}
		m.statusLine = "Starting the day..."
		m.errorLine = ""
		return m, m.appendEntryCmd(entry)
	case key.Matches(msg, keys.edit):
		return m.openEditor()
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) beginInput(next mode, label string) (tea.Model, tea.Cmd) {
	m.mode = next
	m.inputLabel = label
	m.input.SetValue("")
	m.statusLine = ""
	m.errorLine = ""
	return m, m.input.Focus()
}

func (m Model) cancelInput(message string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.inputLabel = ""
	m.input.SetValue("")
	m.input.Blur()
	m.statusLine = message
	m.errorLine = ""
	return m, nil
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAdd:
		entry, err := parseInputLine(value, m.clk.Now())
		if err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		if err := logbook.ValidateText(entry.Text); err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		next, _ := m.cancelInput("Saving entry...")
		return next, m.appendEntryCmd(entry)
	case modeGoto:
		date, err := dates.Resolve(value, m.today())
		if err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		next, _ := m.cancelInput("")
		return next.(Model).gotoDate(date)
	default:
		return m.cancelInput("")
	}
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for dates we no longer display.
	if msg.date != m.currentDate {
		return m, nil
	}
	m.loading = false
	m.faultLine = 0
	if msg.err != nil {
		var lineErr *logbook.LineError
		if errors.As(msg.err, &lineErr) {
			m.faultLine = lineErr.Line
		}
		m.records = nil
		m.selected = 0
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", msg.date, msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.records = msg.records
	switch {
	case len(m.records) == 0:
		m.selected = 0
		m.statusLine = fmt.Sprintf("%s has no entries.", msg.date)
	case m.selectLast || m.selected >= len(m.records):
		m.selected = len(m.records) - 1
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.records), plural(len(m.records)))
	default:
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.records), plural(len(m.records)))
	}
	m.selectLast = false
	return m, nil
}

func (m Model) handleAppendResult(msg appendResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Add failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	date := dates.Of(msg.entry.Time.In(m.reader.Location()))
	m.currentDate = date
	m.errorLine = ""
	m.statusLine = "Entry added."
	m.loading = true
	m.selectLast = true
	return m, m.loadDayCmd(date)
}

func (m Model) handleEditorDone(msg editorDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Editor failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.loading = true
	m.statusLine = "Reloading after edit..."
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

func (m Model) gotoDate(date dates.Date) (tea.Model, tea.Cmd) {
	if date == m.currentDate {
		return m.reload()
	}

	m.currentDate = date
	m.records = nil
	m.selected = 0
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", date)
	m.errorLine = ""
	m.selectLast = false
	return m, m.loadDayCmd(date)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.currentDate)
	m.errorLine = ""
	return m, m.loadDayCmd(m.currentDate)
}

// openEditor suspends the browser and opens the log at the faulty line, or at the end.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	path, err := m.manager.EnsureFile()
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	line := editor.EndOfFile
	if m.faultLine > 0 {
		line = m.faultLine
	}
	m.statusLine = fmt.Sprintf("Opening %s...", editor.Name())
	m.errorLine = ""
	return m, tea.ExecProcess(editor.Command(path, line), func(err error) tea.Msg {
		return editorDoneMsg{err: err}
	})
}

func (m Model) loadDayCmd(date dates.Date) tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	return func() tea.Msg {
		records, err := reader.Select(ctx, dates.NewFilter([]dates.Date{date}, nil))
		return dayLoadedMsg{date: date, records: records, err: err}
	}
}

func (m Model) appendEntryCmd(entry logbook.Entry) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	return func() tea.Msg {
		if err := writer.Append(ctx, entry); err != nil {
			return appendResultMsg{entry: entry, err: err}
		}
		return appendResultMsg{entry: entry}
	}
}

func (m Model) today() dates.Date {
	return dates.Of(m.clk.Now())
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s, %s", m.currentDate.Weekday(), m.currentDate)
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(ruleStyle.Render(strings.Repeat("-", len(header))))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.records) == 0 {
		b.WriteString("(no entries)\n")
	} else {
		loc := m.reader.Location()
		for i, rec := range m.records {
			row := formatRecord(rec, loc)
			if i == m.selected {
				b.WriteString("> ")
				b.WriteString(selectedStyle.Render(row))
			} else {
				b.WriteString("  ")
				b.WriteString(row)
			}
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	if m.mode != modeNormal {
		b.WriteString("\n")
		b.WriteString(m.inputLabel)
		b.WriteByte('\n')
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteByte('\n')

	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

func formatRecord(rec logbook.Record, loc *time.Location) string {
	when := rec.Time.In(loc).Format("15:04")
	if rec.IsStart() {
		return when + "         " + startStyle.Render("start of day")
	}
	return fmt.Sprintf("%s  %s  %s", when, durationStyle.Render(clock.FormatHHMM(rec.Duration())), rec.Text)
}
