package commands

import (
	"context"
	"fmt"

	"daybook/internal/domain"
	"daybook/internal/index"
)

// RebuildCommand reconstructs the waypoint graph from the vault
type RebuildCommand struct {
	builder *index.Builder
}

// NewRebuildCommand creates a new RebuildCommand
func NewRebuildCommand(builder *index.Builder) *RebuildCommand {
	return &RebuildCommand{builder: builder}
}

// Execute runs the rebuild command
func (c *RebuildCommand) Execute(ctx context.Context) (*domain.IndexStats, error) {
	stats, err := c.builder.Rebuild()
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild index: %w", err)
	}
	return stats, nil
}
