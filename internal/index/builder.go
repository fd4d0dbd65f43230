package index

import (
	"fmt"
	"sync/atomic"
	"time"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// Adjacency selects a neighbor in the chronological note sequence.
type Adjacency int

const (
	Previous Adjacency = iota
	Next
)

// snapshot is one immutable generation of the index: the graph plus
// the id→leaf lookup map, always swapped as a unit so queries never
// observe a mix of old and new state.
type snapshot struct {
	graph *domain.Graph
	byID  map[string]*domain.NoteWaypoint
}

// Builder owns the current waypoint graph and rebuilds it wholesale
// from a NoteSource. Queries read whichever snapshot was current when
// they started; Rebuild publishes a fresh one atomically.
type Builder struct {
	source  ports.NoteSource
	current atomic.Pointer[snapshot]
}

// NewBuilder creates a builder over a note source. The index starts
// empty; call Rebuild to populate it.
func NewBuilder(source ports.NoteSource) *Builder {
	b := &Builder{source: source}
	b.current.Store(&snapshot{
		graph: domain.NewGraph(domain.NewGroup("daily notes")),
		byID:  map[string]*domain.NoteWaypoint{},
	})
	return b
}

// Rebuild lists the vault and reconstructs the graph and lookup cache
// from scratch. Files whose paths do not encode a date are skipped,
// not errors. If the listing itself fails the previous snapshot is
// retained and the error is returned, so an I/O failure is never
// mistaken for an empty vault. Rebuilding with an unchanged vault is
// idempotent.
func (b *Builder) Rebuild() (*domain.IndexStats, error) {
	start := time.Now()

	notes, err := b.source.ListNotes()
	if err != nil {
		return nil, fmt.Errorf("listing vault notes: %w", err)
	}

	root := domain.NewGroup("daily notes")
	byID := make(map[string]*domain.NoteWaypoint, len(notes))
	stats := &domain.IndexStats{FilesListed: len(notes)}

	for _, ref := range notes {
		date, ok := domain.DateFromPath(ref.ID)
		if !ok {
			continue // not a daily note
		}
		leaf := &domain.NoteWaypoint{Note: ref, Date: date}
		root.Add(leaf)
		byID[ref.ID] = leaf
		stats.NotesIndexed++
	}

	b.current.Store(&snapshot{graph: domain.NewGraph(root), byID: byID})

	stats.Duration = time.Since(start)
	return stats, nil
}

// Graph returns the current graph generation. Holders of an old
// generation may keep querying it safely after a rebuild.
func (b *Builder) Graph() *domain.Graph {
	return b.current.Load().graph
}

// DateFor resolves the calendar date of a note by identifier: O(1)
// through the lookup cache, falling back to re-deriving from the path
// for notes no rebuild has observed yet.
func (b *Builder) DateFor(id string) (time.Time, bool) {
	if leaf, cached := b.current.Load().byID[id]; cached {
		return leaf.Date, true
	}
	return domain.DateFromPath(id)
}

// NoteOn returns the note for a calendar day, or ok=false.
func (b *Builder) NoteOn(date time.Time) (domain.NoteRef, bool) {
	matches := b.Graph().Find(date)
	if len(matches) == 0 {
		return domain.NoteRef{}, false
	}
	return matches[0].Note, true
}

// HasNote reports whether a note exists for a calendar day.
func (b *Builder) HasNote(date time.Time) bool {
	_, ok := b.NoteOn(date)
	return ok
}

// Adjacent returns the neighboring note relative to date in the
// chronological sequence. ok is false when date has no note or the
// neighbor would fall off either end.
func (b *Builder) Adjacent(date time.Time, dir Adjacency) (domain.NoteRef, bool) {
	notes := b.Graph().Notes(domain.DirectionFuture)

	at := -1
	for i, n := range notes {
		if domain.SameDay(n.Date, date) {
			at = i
			break
		}
	}
	if at < 0 {
		return domain.NoteRef{}, false
	}

	neighbor := at + 1
	if dir == Previous {
		neighbor = at - 1
	}
	if neighbor < 0 || neighbor >= len(notes) {
		return domain.NoteRef{}, false
	}
	return notes[neighbor].Note, true
}

// Timeline builds the gap-collapsed note sequence for the current
// graph generation.
func (b *Builder) Timeline(active, current time.Time) []domain.NavItem {
	return domain.BuildTimeline(b.Graph(), active, current)
}

// Indexed exports the current generation as persistable rows, oldest
// first, for syncing into a NoteIndex mirror.
func (b *Builder) Indexed() []domain.IndexedNote {
	notes := b.Graph().Notes(domain.DirectionFuture)
	rows := make([]domain.IndexedNote, len(notes))
	for i, n := range notes {
		rows[i] = domain.IndexedNote{Path: n.Note.ID, Date: n.Date}
	}
	return rows
}
