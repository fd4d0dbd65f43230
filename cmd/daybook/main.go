package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/adapters/editor"
	"daybook/internal/adapters/filesystem"
	"daybook/internal/adapters/tui"
	"daybook/internal/config"
	"daybook/internal/index"
)

func main() {
	// Initialize adapters
	source := filesystem.NewSource(config.VaultPath())
	builder := index.NewBuilder(source)
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(source, builder, editorOpener)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
