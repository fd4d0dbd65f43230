package ports

import "os/exec"

// EditorOpener defines the interface for opening a note in an external
// editor.
type EditorOpener interface {
	// OpenFile opens the file in the user's preferred editor, resolved
	// from $EDITOR/$VISUAL with common fallbacks.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file, for integrating
	// with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
