package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"daybook/internal/domain"
)

// Source implements ports.NoteSource over a vault directory on disk.
type Source struct {
	vaultPath string
}

// NewSource creates a filesystem note source for a vault path.
func NewSource(vaultPath string) *Source {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Source{vaultPath: vaultPath}
}

// VaultPath returns the expanded vault root.
func (s *Source) VaultPath() string { return s.vaultPath }

// ListNotes returns every markdown file in the vault as a NoteRef with
// a vault-relative identifier. Unreadable subtrees are skipped; only a
// failure to read the vault root itself is an error, so a broken vault
// is distinguishable from an empty one.
func (s *Source) ListNotes() ([]domain.NoteRef, error) {
	if _, err := os.ReadDir(s.vaultPath); err != nil {
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	var notes []domain.NoteRef
	err := filepath.Walk(s.vaultPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}

		// Skip hidden directories
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") && path != s.vaultPath {
			return filepath.SkipDir
		}

		if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		relPath, err := filepath.Rel(s.vaultPath, path)
		if err != nil {
			return nil
		}

		notes = append(notes, domain.NoteRef{
			ID:   filepath.ToSlash(relPath),
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault: %w", err)
	}

	return notes, nil
}

// CreateNote materializes the daily note for a date at its canonical
// pattern path. Creating a note that already exists returns the
// existing reference without touching the file.
func (s *Source) CreateNote(date time.Time) (domain.NoteRef, error) {
	relPath := domain.PathForDate(date)
	fullPath := filepath.Join(s.vaultPath, filepath.FromSlash(relPath))
	ref := domain.NoteRef{ID: relPath, Path: fullPath}

	if _, err := os.Stat(fullPath); err == nil {
		return ref, nil
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return domain.NoteRef{}, fmt.Errorf("failed to create note folder: %w", err)
	}

	content := fmt.Sprintf("# %s\n\n", date.UTC().Format("Mon, 02 Jan 2006"))
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return domain.NoteRef{}, fmt.Errorf("failed to create note: %w", err)
	}

	return ref, nil
}
