package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"daybook/internal/domain"
	"daybook/internal/index"
)

func setupTestVault(t *testing.T) string {
	t.Helper()
	vaultPath := t.TempDir()

	files := []string{
		"2025/01. Jan/01 Wed.md",
		"2025/01. Jan/02 Thu.md",
		"2025/01. Jan/05 Sun.md",
		"notes/random.md",
		"README.md",
	}
	for _, rel := range files {
		full := filepath.Join(vaultPath, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte("# note\n"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	// Hidden directories must be skipped entirely.
	hidden := filepath.Join(vaultPath, ".obsidian")
	if err := os.MkdirAll(hidden, 0755); err != nil {
		t.Fatalf("failed to create hidden dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(hidden, "workspace.md"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write hidden file: %v", err)
	}

	return vaultPath
}

func TestListNotes(t *testing.T) {
	src := NewSource(setupTestVault(t))

	notes, err := src.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}

	if len(notes) != 5 {
		t.Fatalf("expected 5 markdown files, got %d: %v", len(notes), notes)
	}
	for _, n := range notes {
		if strings.Contains(n.ID, ".obsidian") {
			t.Errorf("hidden directory leaked into listing: %s", n.ID)
		}
		if filepath.IsAbs(n.ID) {
			t.Errorf("ID should be vault-relative, got %s", n.ID)
		}
		if !filepath.IsAbs(n.Path) {
			t.Errorf("Path should be absolute, got %s", n.Path)
		}
	}
}

func TestListNotesMissingVault(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "does-not-exist"))

	if _, err := src.ListNotes(); err == nil {
		t.Fatal("expected an error for an unreadable vault root")
	}
}

func TestCreateNote(t *testing.T) {
	src := NewSource(t.TempDir())
	day := domain.Day(2025, time.December, 29)

	ref, err := src.CreateNote(day)
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if ref.ID != "2025/12. Dec/29 Mon.md" {
		t.Errorf("created at %q, want canonical pattern path", ref.ID)
	}

	content, err := os.ReadFile(ref.Path)
	if err != nil {
		t.Fatalf("created note unreadable: %v", err)
	}
	if !strings.Contains(string(content), "Mon, 29 Dec 2025") {
		t.Errorf("template heading missing, got %q", content)
	}

	t.Run("idempotent", func(t *testing.T) {
		if err := os.WriteFile(ref.Path, []byte("edited\n"), 0644); err != nil {
			t.Fatal(err)
		}
		again, err := src.CreateNote(day)
		if err != nil {
			t.Fatalf("second CreateNote failed: %v", err)
		}
		if again != ref {
			t.Errorf("existing note should be returned as-is, got %+v", again)
		}
		content, _ := os.ReadFile(ref.Path)
		if string(content) != "edited\n" {
			t.Error("CreateNote must not overwrite an existing note")
		}
	})
}

// End-to-end: a real vault on disk, listed through the source and
// indexed by the builder, answers navigation queries.
func TestVaultThroughBuilder(t *testing.T) {
	src := NewSource(setupTestVault(t))
	b := index.NewBuilder(src)

	if _, err := b.Rebuild(); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	jan2 := domain.Day(2025, time.January, 2)
	items := b.Timeline(jan2, domain.Day(2025, time.January, 5))

	if len(items) != 4 {
		t.Fatalf("expected note, note, gap, note; got %v", items)
	}
	if items[2].Kind != domain.NavGap || items[2].GapDays != 2 {
		t.Errorf("gap = %+v, want 2 missing days", items[2])
	}

	next, ok := b.Adjacent(jan2, index.Next)
	if !ok || next.ID != "2025/01. Jan/05 Sun.md" {
		t.Errorf("Adjacent(jan2, Next) = %v, %v", next, ok)
	}
}
