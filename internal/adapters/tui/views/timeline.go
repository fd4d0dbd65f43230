package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/tui/styles"
	"daybook/internal/domain"
	"daybook/internal/index"
	"daybook/internal/ports"
)

// TimelineKeyMap defines key bindings for the timeline view
type TimelineKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Today   key.Binding
	Open    key.Binding
	Create  key.Binding
	Copy    key.Binding
	Rebuild key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var TimelineKeys = TimelineKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "oldest"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "newest"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Create: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "create missing"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rebuild"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// OpenEditorMsg asks the app to open a note in the external editor
type OpenEditorMsg struct {
	Path string
}

// SwitchToHelpMsg asks the app to show the help view
type SwitchToHelpMsg struct{}

type timelineLoadedMsg struct {
	items []domain.NavItem
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// TimelineModel renders the gap-collapsed note sequence
type TimelineModel struct {
	source  ports.NoteSource
	builder *index.Builder

	items      []domain.NavItem
	cursor     int
	width      int
	height     int
	message    string
	messageErr bool
}

// NewTimelineModel creates a new timeline model
func NewTimelineModel(source ports.NoteSource, builder *index.Builder) *TimelineModel {
	return &TimelineModel{source: source, builder: builder}
}

// Init initializes the timeline
func (m *TimelineModel) Init() tea.Cmd {
	return m.reload(true)
}

// SetSize updates the view dimensions
func (m *TimelineModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *TimelineModel) reload(rebuild bool) tea.Cmd {
	return func() tea.Msg {
		if rebuild {
			if _, err := m.builder.Rebuild(); err != nil {
				return errMsg{err}
			}
		}
		today := domain.DayOf(time.Now())
		return timelineLoadedMsg{items: m.builder.Timeline(today, today)}
	}
}

// Update handles messages for the timeline
func (m *TimelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case timelineLoadedMsg:
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = len(m.items) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case successMsg:
		m.message = msg.message
		m.messageErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *TimelineModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, TimelineKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, TimelineKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, TimelineKeys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, TimelineKeys.Top):
		m.cursor = 0

	case key.Matches(msg, TimelineKeys.Bottom):
		m.cursor = len(m.items) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}

	case key.Matches(msg, TimelineKeys.Today):
		m.jumpToToday()

	case key.Matches(msg, TimelineKeys.Open):
		if item, ok := m.selected(); ok && item.Kind == domain.NavNote {
			return m, func() tea.Msg { return OpenEditorMsg{Path: item.Note.Path} }
		}

	case key.Matches(msg, TimelineKeys.Create):
		if item, ok := m.selected(); ok && item.Kind == domain.NavGap {
			return m, m.createNote(item.Date)
		}

	case key.Matches(msg, TimelineKeys.Copy):
		if item, ok := m.selected(); ok && item.Kind == domain.NavNote {
			if err := clipboard.WriteAll(item.Note.ID); err != nil {
				m.message = err.Error()
				m.messageErr = true
			} else {
				m.message = "Copied " + item.Note.ID
				m.messageErr = false
			}
		}

	case key.Matches(msg, TimelineKeys.Rebuild):
		return m, m.reload(true)

	case key.Matches(msg, TimelineKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

func (m *TimelineModel) selected() (domain.NavItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return domain.NavItem{}, false
	}
	return m.items[m.cursor], true
}

func (m *TimelineModel) jumpToToday() {
	today := domain.DayOf(time.Now())
	for i, item := range m.items {
		if item.Kind == domain.NavNote && domain.SameDay(item.Date, today) {
			m.cursor = i
			return
		}
	}
	m.message = "No note for today"
	m.messageErr = false
}

// createNote materializes the first missing day of the selected gap.
func (m *TimelineModel) createNote(date time.Time) tea.Cmd {
	return func() tea.Msg {
		ref, err := m.source.CreateNote(date)
		if err != nil {
			return errMsg{err}
		}
		if _, err := m.builder.Rebuild(); err != nil {
			return errMsg{err}
		}
		return successMsg{message: "Created " + ref.ID}
	}
}

// Reload refreshes the timeline from the current graph
func (m *TimelineModel) Reload() tea.Cmd {
	return m.reload(false)
}

// View renders the timeline
func (m *TimelineModel) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("daybook"))
	sb.WriteString("\n")

	if len(m.items) == 0 {
		sb.WriteString(styles.StatusText.Render("No daily notes in this vault."))
		sb.WriteString("\n")
	}

	first, last := m.window()
	for i := first; i < last; i++ {
		sb.WriteString(m.renderItem(i))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	return styles.App.Render(sb.String())
}

// window returns the visible item range, keeping the cursor in view.
func (m *TimelineModel) window() (int, int) {
	visible := m.height - 7 // title, padding, status
	if visible < 1 {
		visible = 20
	}
	if len(m.items) <= visible {
		return 0, len(m.items)
	}

	first := m.cursor - visible/2
	if first < 0 {
		first = 0
	}
	last := first + visible
	if last > len(m.items) {
		last = len(m.items)
		first = last - visible
	}
	return first, last
}

func (m *TimelineModel) renderItem(i int) string {
	item := m.items[i]

	var line string
	if item.Kind == domain.NavGap {
		noun := "days"
		if item.GapDays == 1 {
			noun = "day"
		}
		line = fmt.Sprintf("%s  ·· %d missing %s", item.Date.Format("2006-01-02"), item.GapDays, noun)
		if i != m.cursor {
			return styles.Gap.Render(line)
		}
	} else {
		line = fmt.Sprintf("%s  %s", item.Date.Format("2006-01-02"), item.Note.ID)
		switch {
		case i == m.cursor:
			// styled below
		case item.IsCurrent:
			return styles.NoteCurrent.Render(line)
		case item.IsActive:
			return styles.NoteActive.Render(line)
		default:
			return styles.Note.Render(line)
		}
	}

	return styles.Selected.Render(line)
}

func (m *TimelineModel) renderStatus() string {
	if m.message != "" {
		if m.messageErr {
			return styles.ErrorMsg.Render(m.message)
		}
		return styles.Success.Render(m.message)
	}

	hints := []string{"j/k move", "t today", "enter open", "c create", "y copy", "r rebuild", "? help", "q quit"}
	return styles.StatusBar.Render(strings.Join(hints, "  "))
}
