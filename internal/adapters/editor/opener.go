package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Opener implements ports.EditorOpener. The editor binary is resolved
// once at construction so every open uses the same program.
type Opener struct {
	editor string
}

// NewOpener creates an editor opener, resolving $EDITOR/$VISUAL with
// common fallbacks. The returned opener may be unusable if no editor
// exists; Command reports that on first use.
func NewOpener() *Opener {
	return &Opener{editor: resolveEditor()}
}

// OpenFile opens a note in the user's preferred editor and waits for
// it to exit.
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a note, wired to the current
// terminal for use with bubbletea's ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if o.editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(o.editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func resolveEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, candidate := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}
