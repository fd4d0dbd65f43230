package commands

import (
	"context"
	"fmt"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/index"
	"daybook/internal/ports"
)

// CreateNoteResult contains the result of creating a daily note
type CreateNoteResult struct {
	Note    domain.NoteRef
	Message string
}

// CreateNoteCommand materializes the note file for a date and rebuilds
// the index so the next query observes it
type CreateNoteCommand struct {
	source  ports.NoteSource
	builder *index.Builder
	Date    time.Time
}

// NewCreateNoteCommand creates a new CreateNoteCommand
func NewCreateNoteCommand(source ports.NoteSource, builder *index.Builder, date time.Time) *CreateNoteCommand {
	return &CreateNoteCommand{source: source, builder: builder, Date: date}
}

// Validate checks if the create operation is valid
func (c *CreateNoteCommand) Validate() error {
	if !domain.ValidDay(c.Date) {
		return &application.ValidationError{
			Field:   "date",
			Message: "a calendar date is required",
		}
	}
	return nil
}

// Execute runs the create note command
func (c *CreateNoteCommand) Execute(ctx context.Context) (*CreateNoteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ref, err := c.source.CreateNote(c.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if _, err := c.builder.Rebuild(); err != nil {
		return nil, fmt.Errorf("failed to reindex after create: %w", err)
	}

	return &CreateNoteResult{
		Note:    ref,
		Message: fmt.Sprintf("Created note: %s", ref.ID),
	}, nil
}
