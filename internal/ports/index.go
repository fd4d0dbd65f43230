package ports

import (
	"time"

	"daybook/internal/domain"
)

// NoteIndex provides a persistent mirror of the in-memory graph so
// date-range queries survive across processes without re-walking the
// vault. Queries should be O(log n) via database indexes.
type NoteIndex interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// NeedsFullRebuild reports whether the stored schema or vault
	// binding is stale and the mirror must be re-synced.
	NeedsFullRebuild() bool

	// SyncFull replaces the mirror contents with the given notes.
	SyncFull(notes []domain.IndexedNote) (*domain.SyncStats, error)

	// Queries
	NoteOn(date time.Time) (*domain.IndexedNote, error)
	NotesBetween(from, to time.Time) ([]domain.IndexedNote, error)
	Count() (int, error)
}
