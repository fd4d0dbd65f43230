package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"daybook/internal/domain"
	"daybook/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// dayFormat is how calendar days are stored; lexicographic order
// matches chronological order.
const dayFormat = "2006-01-02"

// Index implements ports.NoteIndex using SQLite
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure Index implements NoteIndex
var _ ports.NoteIndex = (*Index)(nil)

// NewIndex creates a new SQLite note index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given vault path
func (idx *Index) Open(vaultPath string) error {
	// Expand ~ in path
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	idx.vaultPath = vaultPath
	idx.dbPath = databasePath(vaultPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			day TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notes_day ON notes(day);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Update metadata
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the mirror should be fully re-synced
func (idx *Index) NeedsFullRebuild() bool {
	var version, vaultHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'vault_path_hash'").Scan(&vaultHash)

	expectedHash := hashVaultPath(idx.vaultPath)

	return version != schemaVersion || vaultHash != expectedHash
}

// SyncFull replaces the mirror contents with the given notes
func (idx *Index) SyncFull(notes []domain.IndexedNote) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		return nil, err
	}

	for _, n := range notes {
		_, err := tx.Exec(`
			INSERT OR REPLACE INTO notes (path, day) VALUES (?, ?)
		`, n.Path, n.Date.UTC().Format(dayFormat))
		if err != nil {
			return nil, err
		}
		stats.NotesWritten++
	}

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)
	`, time.Now().Unix()); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// NoteOn retrieves the note for a calendar day, nil when absent
func (idx *Index) NoteOn(date time.Time) (*domain.IndexedNote, error) {
	var path, day string

	err := idx.db.QueryRow(`
		SELECT path, day FROM notes WHERE day = ? LIMIT 1
	`, date.UTC().Format(dayFormat)).Scan(&path, &day)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return rowToNote(path, day)
}

// NotesBetween retrieves all notes in [from, to], oldest first
func (idx *Index) NotesBetween(from, to time.Time) ([]domain.IndexedNote, error) {
	rows, err := idx.db.Query(`
		SELECT path, day FROM notes
		WHERE day >= ? AND day <= ?
		ORDER BY day ASC
	`, from.UTC().Format(dayFormat), to.UTC().Format(dayFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.IndexedNote
	for rows.Next() {
		var path, day string
		if err := rows.Scan(&path, &day); err != nil {
			return nil, err
		}
		note, err := rowToNote(path, day)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}

	return notes, rows.Err()
}

// Count returns the number of mirrored notes
func (idx *Index) Count() (int, error) {
	var count int
	err := idx.db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&count)
	return count, err
}

func rowToNote(path, day string) (*domain.IndexedNote, error) {
	date, err := time.ParseInLocation(dayFormat, day, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("corrupt day column %q: %w", day, err)
	}
	return &domain.IndexedNote{Path: path, Date: date}, nil
}

// databasePath returns the path for the SQLite database
func databasePath(vaultPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash vault path for unique DB name
	hash := hashVaultPath(vaultPath)

	return filepath.Join(dataHome, "daybook", hash+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and vault path hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path_hash', ?);
	`, schemaVersion, hashVaultPath(idx.vaultPath))
	return err
}
