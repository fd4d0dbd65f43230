package ports

import (
	"time"

	"daybook/internal/domain"
)

// NoteSource defines the interface to the external file collection the
// index is built from. The source owns the files; the core never
// mutates them except through CreateNote.
type NoteSource interface {
	// ListNotes returns every addressable markdown file in the vault,
	// dated or not. Called at the start of each rebuild; an error here
	// must leave the previous index untouched.
	ListNotes() ([]domain.NoteRef, error)

	// CreateNote materializes the daily note for a date at its
	// canonical pattern path and returns its reference. Creating an
	// already-existing note returns the existing reference.
	CreateNote(date time.Time) (domain.NoteRef, error)
}
