package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches bursts of filesystem events (editors often
// write several per save) into a single rebuild.
const DefaultDebounce = 250 * time.Millisecond

// Watcher monitors a vault directory tree and invokes a callback when
// markdown files are created, renamed or removed. The callback is
// expected to rebuild the index; in-flight queries keep their graph
// generation, so firing it redundantly is safe.
type Watcher struct {
	vaultPath string
	watcher   *fsnotify.Watcher
	debounce  time.Duration
	onChange  func()
}

// New creates a watcher over a vault path. onChange runs on the
// watcher's goroutine after each debounced batch of relevant events.
func New(vaultPath string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		vaultPath: vaultPath,
		watcher:   fsw,
		debounce:  DefaultDebounce,
		onChange:  onChange,
	}, nil
}

// Run watches until ctx is cancelled. Newly created directories are
// added to the watch set so notes made in fresh month folders are
// still observed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.addRecursive(w.vaultPath); err != nil {
		return fmt.Errorf("failed to watch vault: %w", err)
	}

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addRecursive(event.Name)
				}
			}
			if !relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// relevant reports whether an event should trigger a rebuild:
// structural changes (create, rename, remove) to markdown files.
// Plain writes do not move notes between dates, so they are ignored.
func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(name), ".md")
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if !info.IsDir() {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
