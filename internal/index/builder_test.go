package index

import (
	"errors"
	"testing"
	"time"

	"daybook/internal/domain"
)

// fakeSource is an in-memory NoteSource for exercising the builder
// without a real vault.
type fakeSource struct {
	notes   []domain.NoteRef
	listErr error
}

func (s *fakeSource) ListNotes() ([]domain.NoteRef, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.notes, nil
}

func (s *fakeSource) CreateNote(date time.Time) (domain.NoteRef, error) {
	id := domain.PathForDate(date)
	ref := domain.NoteRef{ID: id, Path: "/vault/" + id}
	s.notes = append(s.notes, ref)
	return ref, nil
}

func ref(id string) domain.NoteRef {
	return domain.NoteRef{ID: id, Path: "/vault/" + id}
}

func sourceWithDays(days ...time.Time) *fakeSource {
	s := &fakeSource{}
	for _, d := range days {
		s.notes = append(s.notes, ref(domain.PathForDate(d)))
	}
	return s
}

func mustRebuild(t *testing.T, b *Builder) *domain.IndexStats {
	t.Helper()
	stats, err := b.Rebuild()
	if err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	return stats
}

func TestRebuildSkipsUndatedFiles(t *testing.T) {
	src := sourceWithDays(domain.Day(2025, time.March, 7))
	src.notes = append(src.notes, ref("notes/random.md"), ref("README.md"))

	b := NewBuilder(src)
	stats := mustRebuild(t, b)

	if stats.FilesListed != 3 {
		t.Errorf("FilesListed = %d, want 3", stats.FilesListed)
	}
	if stats.NotesIndexed != 1 {
		t.Errorf("NotesIndexed = %d, want 1", stats.NotesIndexed)
	}
	if !b.HasNote(domain.Day(2025, time.March, 7)) {
		t.Error("dated note missing from graph")
	}
	if _, ok := b.DateFor("notes/random.md"); ok {
		t.Error("undated file should have no date")
	}
}

func TestRebuildIdempotent(t *testing.T) {
	b := NewBuilder(sourceWithDays(
		domain.Day(2025, time.January, 1),
		domain.Day(2025, time.January, 2),
	))

	first := mustRebuild(t, b)
	indexed := b.Indexed()
	second := mustRebuild(t, b)

	if first.NotesIndexed != second.NotesIndexed {
		t.Errorf("stats diverged across rebuilds: %d vs %d", first.NotesIndexed, second.NotesIndexed)
	}

	again := b.Indexed()
	if len(indexed) != len(again) {
		t.Fatalf("indexed sets diverged: %d vs %d", len(indexed), len(again))
	}
	for i := range indexed {
		if indexed[i] != again[i] {
			t.Errorf("row %d diverged: %+v vs %+v", i, indexed[i], again[i])
		}
	}
}

func TestRebuildListingFailureKeepsPreviousGraph(t *testing.T) {
	src := sourceWithDays(domain.Day(2025, time.January, 1))
	b := NewBuilder(src)
	mustRebuild(t, b)

	src.listErr = errors.New("permission denied")
	if _, err := b.Rebuild(); err == nil {
		t.Fatal("expected rebuild to propagate listing failure")
	}

	if !b.HasNote(domain.Day(2025, time.January, 1)) {
		t.Error("failed rebuild must retain the previous graph")
	}
}

func TestDateForFallsBackToPath(t *testing.T) {
	b := NewBuilder(&fakeSource{})
	mustRebuild(t, b)

	// Not in any rebuild yet, but the path itself encodes the date.
	got, ok := b.DateFor("2025/03. Mar/07 Fri.md")
	if !ok || !got.Equal(domain.Day(2025, time.March, 7)) {
		t.Errorf("DateFor fallback = %v, %v", got, ok)
	}

	if _, ok := b.DateFor("not-a-note.md"); ok {
		t.Error("unparseable id should have no date")
	}
}

func TestAdjacent(t *testing.T) {
	jan1 := domain.Day(2025, time.January, 1)
	jan2 := domain.Day(2025, time.January, 2)
	jan5 := domain.Day(2025, time.January, 5)

	b := NewBuilder(sourceWithDays(jan1, jan2, jan5))
	mustRebuild(t, b)

	t.Run("next skips the gap", func(t *testing.T) {
		got, ok := b.Adjacent(jan2, Next)
		if !ok || got.ID != domain.PathForDate(jan5) {
			t.Errorf("Adjacent(jan2, Next) = %v, %v", got, ok)
		}
	})

	t.Run("previous", func(t *testing.T) {
		got, ok := b.Adjacent(jan2, Previous)
		if !ok || got.ID != domain.PathForDate(jan1) {
			t.Errorf("Adjacent(jan2, Previous) = %v, %v", got, ok)
		}
	})

	t.Run("boundaries yield none", func(t *testing.T) {
		if _, ok := b.Adjacent(jan1, Previous); ok {
			t.Error("previous of first note should be none")
		}
		if _, ok := b.Adjacent(jan5, Next); ok {
			t.Error("next of last note should be none")
		}
	})

	t.Run("absent date yields none", func(t *testing.T) {
		if _, ok := b.Adjacent(domain.Day(2025, time.January, 3), Next); ok {
			t.Error("adjacency from a gap day should be none")
		}
	})
}

func TestEmptyVaultQueries(t *testing.T) {
	b := NewBuilder(&fakeSource{})
	mustRebuild(t, b)

	any := domain.Day(2025, time.June, 1)
	if b.HasNote(any) {
		t.Error("empty vault should have no notes")
	}
	if _, ok := b.Adjacent(any, Next); ok {
		t.Error("empty vault adjacency should be none")
	}
	if items := b.Timeline(any, any); len(items) != 0 {
		t.Errorf("empty vault timeline = %v", items)
	}
}

func TestOldGenerationStaysUsable(t *testing.T) {
	src := sourceWithDays(domain.Day(2025, time.January, 1))
	b := NewBuilder(src)
	mustRebuild(t, b)

	old := b.Graph()

	src.notes = nil
	mustRebuild(t, b)

	if len(old.Notes(domain.DirectionFuture)) != 1 {
		t.Error("a held graph generation must not change under a rebuild")
	}
	if len(b.Graph().Notes(domain.DirectionFuture)) != 0 {
		t.Error("new generation should reflect the emptied vault")
	}
}
