package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/domain"
	"daybook/internal/index"
)

type memorySource struct {
	notes []domain.NoteRef
}

func (s *memorySource) ListNotes() ([]domain.NoteRef, error) {
	return s.notes, nil
}

func (s *memorySource) CreateNote(date time.Time) (domain.NoteRef, error) {
	id := domain.PathForDate(date)
	ref := domain.NoteRef{ID: id, Path: "/vault/" + id}
	s.notes = append(s.notes, ref)
	return ref, nil
}

func loadedModel(t *testing.T, days ...time.Time) *TimelineModel {
	t.Helper()

	src := &memorySource{}
	for _, d := range days {
		id := domain.PathForDate(d)
		src.notes = append(src.notes, domain.NoteRef{ID: id, Path: "/vault/" + id})
	}

	b := index.NewBuilder(src)
	m := NewTimelineModel(src, b)
	m.SetSize(80, 24)

	msg := m.Init()()
	if _, isErr := msg.(errMsg); isErr {
		t.Fatalf("init failed: %v", msg)
	}
	m.Update(msg)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTimelineNavigation(t *testing.T) {
	m := loadedModel(t,
		domain.Day(2025, time.January, 1),
		domain.Day(2025, time.January, 2),
		domain.Day(2025, time.January, 5),
	)

	if len(m.items) != 4 {
		t.Fatalf("expected 4 timeline entries, got %d", len(m.items))
	}

	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	m.Update(keyMsg("G"))
	if m.cursor != 3 {
		t.Errorf("G should jump to last entry, cursor = %d", m.cursor)
	}

	m.Update(keyMsg("g"))
	if m.cursor != 0 {
		t.Errorf("g should jump to first entry, cursor = %d", m.cursor)
	}
}

func TestTimelineViewShowsGap(t *testing.T) {
	m := loadedModel(t,
		domain.Day(2025, time.January, 2),
		domain.Day(2025, time.January, 5),
	)

	view := m.View()
	if !strings.Contains(view, "2 missing days") {
		t.Errorf("view should summarize the gap, got:\n%s", view)
	}
}

func TestTimelineCreateOnGap(t *testing.T) {
	m := loadedModel(t,
		domain.Day(2025, time.January, 2),
		domain.Day(2025, time.January, 5),
	)

	// Move onto the gap entry and create its first missing day.
	m.Update(keyMsg("j"))
	if item, ok := m.selected(); !ok || item.Kind != domain.NavGap {
		t.Fatalf("expected gap under cursor, got %+v", item)
	}

	_, cmd := m.Update(keyMsg("c"))
	if cmd == nil {
		t.Fatal("expected a create command")
	}
	msg := cmd()
	if _, isErr := msg.(errMsg); isErr {
		t.Fatalf("create failed: %v", msg)
	}
	m.Update(msg)

	// After reload the gap shrinks to one missing day.
	m.Update(m.Reload()())
	if len(m.items) != 4 {
		t.Fatalf("expected note/note/gap/note after create, got %d entries", len(m.items))
	}
}

func TestTimelineEmptyVault(t *testing.T) {
	m := loadedModel(t)

	view := m.View()
	if !strings.Contains(view, "No daily notes") {
		t.Errorf("empty vault view should say so, got:\n%s", view)
	}

	// Keys on an empty timeline must not panic.
	m.Update(keyMsg("j"))
	m.Update(keyMsg("G"))
	m.Update(keyMsg("c"))
}
