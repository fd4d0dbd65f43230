package commands

import (
	"context"
	"time"

	"daybook/internal/domain"
	"daybook/internal/index"
)

// TimelineCommand builds the gap-collapsed note sequence
type TimelineCommand struct {
	builder *index.Builder
	Active  time.Time // caller-selected date, flagged IsActive
	Current time.Time // "today", flagged IsCurrent
}

// NewTimelineCommand creates a new TimelineCommand
func NewTimelineCommand(builder *index.Builder, active, current time.Time) *TimelineCommand {
	return &TimelineCommand{builder: builder, Active: active, Current: current}
}

// Execute runs the timeline command. An empty vault yields an empty
// sequence, never an error.
func (c *TimelineCommand) Execute(ctx context.Context) ([]domain.NavItem, error) {
	return c.builder.Timeline(c.Active, c.Current), nil
}
