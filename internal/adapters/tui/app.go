package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/editor"
	"daybook/internal/adapters/tui/views"
	"daybook/internal/index"
	"daybook/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewTimeline ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor *editor.Opener

	state    ViewState
	timeline *views.TimelineModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(source ports.NoteSource, builder *index.Builder, ed *editor.Opener) *App {
	return &App{
		editor:   ed,
		state:    ViewTimeline,
		timeline: views.NewTimelineModel(source, builder),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.timeline.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.timeline.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToTimelineMsg:
		a.state = ViewTimeline
		return a, a.timeline.Reload()

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewTimeline:
		_, cmd = a.timeline.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.timeline.View()
}
