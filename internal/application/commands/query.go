package commands

import (
	"context"
	"time"

	"daybook/internal/application"
	"daybook/internal/domain"
	"daybook/internal/index"
)

// FindNoteCommand resolves the note for a calendar day
type FindNoteCommand struct {
	builder *index.Builder
	Date    time.Time
}

// NewFindNoteCommand creates a new FindNoteCommand
func NewFindNoteCommand(builder *index.Builder, date time.Time) *FindNoteCommand {
	return &FindNoteCommand{builder: builder, Date: date}
}

// Validate checks if the query is valid
func (c *FindNoteCommand) Validate() error {
	if c.Date.IsZero() {
		return &application.ValidationError{
			Field:   "date",
			Message: "date is required",
		}
	}
	return nil
}

// Execute runs the find note command. A missing note is reported as
// ErrNotFound, never as a failure.
func (c *FindNoteCommand) Execute(ctx context.Context) (*domain.NoteRef, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ref, ok := c.builder.NoteOn(c.Date)
	if !ok {
		return nil, application.ErrNotFound
	}
	return &ref, nil
}

// HasNoteCommand reports whether a note exists for a calendar day
type HasNoteCommand struct {
	builder *index.Builder
	Date    time.Time
}

// NewHasNoteCommand creates a new HasNoteCommand
func NewHasNoteCommand(builder *index.Builder, date time.Time) *HasNoteCommand {
	return &HasNoteCommand{builder: builder, Date: date}
}

// Execute runs the has note command
func (c *HasNoteCommand) Execute(ctx context.Context) (bool, error) {
	return c.builder.HasNote(c.Date), nil
}

// AdjacentNoteCommand resolves the previous or next note relative to a day
type AdjacentNoteCommand struct {
	builder   *index.Builder
	Date      time.Time
	Direction index.Adjacency
}

// NewAdjacentNoteCommand creates a new AdjacentNoteCommand
func NewAdjacentNoteCommand(builder *index.Builder, date time.Time, dir index.Adjacency) *AdjacentNoteCommand {
	return &AdjacentNoteCommand{builder: builder, Date: date, Direction: dir}
}

// Validate checks if the query is valid
func (c *AdjacentNoteCommand) Validate() error {
	if c.Date.IsZero() {
		return &application.ValidationError{
			Field:   "date",
			Message: "date is required",
		}
	}
	return nil
}

// Execute runs the adjacent note command. Boundaries and unknown dates
// are reported as ErrNotFound.
func (c *AdjacentNoteCommand) Execute(ctx context.Context) (*domain.NoteRef, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ref, ok := c.builder.Adjacent(c.Date, c.Direction)
	if !ok {
		return nil, application.ErrNotFound
	}
	return &ref, nil
}

// NoteDateCommand resolves the calendar date of a note by identifier
type NoteDateCommand struct {
	builder *index.Builder
	ID      string
}

// NewNoteDateCommand creates a new NoteDateCommand
func NewNoteDateCommand(builder *index.Builder, id string) *NoteDateCommand {
	return &NoteDateCommand{builder: builder, ID: id}
}

// Validate checks if the query is valid
func (c *NoteDateCommand) Validate() error {
	if c.ID == "" {
		return &application.ValidationError{
			Field:   "id",
			Message: "note identifier is required",
		}
	}
	return nil
}

// Execute runs the note date command. An undated note is reported as
// ErrNoDate.
func (c *NoteDateCommand) Execute(ctx context.Context) (time.Time, error) {
	if err := c.Validate(); err != nil {
		return time.Time{}, err
	}

	date, ok := c.builder.DateFor(c.ID)
	if !ok {
		return time.Time{}, application.ErrNoDate
	}
	return date, nil
}
