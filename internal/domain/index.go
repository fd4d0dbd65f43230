package domain

import "time"

// IndexedNote is a persisted index row for one daily note.
type IndexedNote struct {
	Path string    // vault-relative path (primary key)
	Date time.Time // UTC midnight
}

// IndexStats holds statistics from a graph rebuild.
type IndexStats struct {
	FilesListed  int // addressable files seen in the vault listing
	NotesIndexed int // files that parsed as daily notes
	Duration     time.Duration
}

// SyncStats holds statistics from a persistent index sync.
type SyncStats struct {
	NotesWritten int
	Duration     time.Duration
}
