package application

import (
	"daybook/internal/domain"
	"daybook/internal/index"
)

// Re-export domain types for use by adapters
type (
	NoteRef     = domain.NoteRef
	NavItem     = domain.NavItem
	IndexStats  = domain.IndexStats
	SyncStats   = domain.SyncStats
	IndexedNote = domain.IndexedNote
)

// Re-export timeline kinds
const (
	NavNote = domain.NavNote
	NavGap  = domain.NavGap
)

// Re-export adjacency directions
type Adjacency = index.Adjacency

const (
	Previous = index.Previous
	Next     = index.Next
)
