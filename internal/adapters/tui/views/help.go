package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/tui/styles"
)

// SwitchToTimelineMsg asks the app to return to the timeline view
type SwitchToTimelineMsg struct{}

// HelpModel renders the key binding reference
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "?":
			return m, func() tea.Msg { return SwitchToTimelineMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{"j/↓, k/↑", "move between timeline entries"},
		{"g, G", "jump to oldest / newest note"},
		{"t", "jump to today's note"},
		{"enter", "open the selected note in $EDITOR"},
		{"c", "create the first missing day of the selected gap"},
		{"y", "copy the selected note's vault path"},
		{"r", "rebuild the index from the vault"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render("daybook — keys"))
	sb.WriteString("\n")
	for _, b := range bindings {
		sb.WriteString(styles.HelpKey.Render(b.keys))
		sb.WriteString("  ")
		sb.WriteString(styles.HelpDesc.Render(b.desc))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(styles.StatusText.Render("press ? or esc to go back"))

	return styles.App.Render(sb.String())
}
