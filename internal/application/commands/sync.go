package commands

import (
	"context"
	"fmt"

	"daybook/internal/domain"
	"daybook/internal/index"
	"daybook/internal/ports"
)

// SyncResult contains the combined rebuild and mirror statistics
type SyncResult struct {
	Index *domain.IndexStats
	Sync  *domain.SyncStats
}

// SyncCommand rebuilds the graph and mirrors it into the persistent
// note index
type SyncCommand struct {
	builder *index.Builder
	mirror  ports.NoteIndex
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(builder *index.Builder, mirror ports.NoteIndex) *SyncCommand {
	return &SyncCommand{builder: builder, mirror: mirror}
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	indexStats, err := c.builder.Rebuild()
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}

	syncStats, err := c.mirror.SyncFull(c.builder.Indexed())
	if err != nil {
		return nil, fmt.Errorf("failed to sync note index: %w", err)
	}

	return &SyncResult{Index: indexStats, Sync: syncStats}, nil
}
