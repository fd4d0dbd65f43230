package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/domain"
	"daybook/internal/index"
)

// RegisterReadTools adds all read-only navigation tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, builder *index.Builder) {
	s.AddTool(hasNoteTool(), hasNoteHandler(builder))
	s.AddTool(findNoteTool(), findNoteHandler(builder))
	s.AddTool(adjacentNoteTool(), adjacentNoteHandler(builder))
	s.AddTool(noteDateTool(), noteDateHandler(builder))
	s.AddTool(timelineTool(), timelineHandler(builder))
}

// --- has_note ---

func hasNoteTool() mcp.Tool {
	return mcp.NewTool("has_note",
		mcp.WithDescription("Check whether a daily note exists for a date."),
		mcp.WithString("date",
			mcp.Description("Calendar date (YYYY-MM-DD, today, yesterday, tomorrow)"),
			mcp.Required(),
		),
	)
}

func hasNoteHandler(builder *index.Builder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := application.ParseDay(req.GetString("date", ""))
		if err != nil {
			return toolError(err)
		}

		exists, err := commands.NewHasNoteCommand(builder, date).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if exists {
			return mcp.NewToolResultText("yes"), nil
		}
		return mcp.NewToolResultText("no"), nil
	}
}

// --- find_note ---

func findNoteTool() mcp.Tool {
	return mcp.NewTool("find_note",
		mcp.WithDescription("Resolve the daily note path for a date."),
		mcp.WithString("date",
			mcp.Description("Calendar date (YYYY-MM-DD, today, yesterday, tomorrow)"),
			mcp.Required(),
		),
	)
}

func findNoteHandler(builder *index.Builder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := application.ParseDay(req.GetString("date", ""))
		if err != nil {
			return toolError(err)
		}

		ref, err := commands.NewFindNoteCommand(builder, date).Execute(ctx)
		if errors.Is(err, application.ErrNotFound) {
			return mcp.NewToolResultText("No note for this date."), nil
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(ref.ID), nil
	}
}

// --- adjacent_note ---

func adjacentNoteTool() mcp.Tool {
	return mcp.NewTool("adjacent_note",
		mcp.WithDescription("Resolve the previous or next daily note relative to a date."),
		mcp.WithString("date",
			mcp.Description("Calendar date (YYYY-MM-DD, today, yesterday, tomorrow)"),
			mcp.Required(),
		),
		mcp.WithString("direction",
			mcp.Description("previous or next"),
			mcp.Required(),
		),
	)
}

func adjacentNoteHandler(builder *index.Builder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := application.ParseDay(req.GetString("date", ""))
		if err != nil {
			return toolError(err)
		}
		dir, err := application.ParseAdjacency(req.GetString("direction", ""))
		if err != nil {
			return toolError(err)
		}

		ref, err := commands.NewAdjacentNoteCommand(builder, date, dir).Execute(ctx)
		if errors.Is(err, application.ErrNotFound) {
			return mcp.NewToolResultText("No adjacent note."), nil
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(ref.ID), nil
	}
}

// --- note_date ---

func noteDateTool() mcp.Tool {
	return mcp.NewTool("note_date",
		mcp.WithDescription("Resolve the calendar date of a note by its vault-relative path."),
		mcp.WithString("path",
			mcp.Description("Vault-relative note path (e.g. 2025/03. Mar/07 Fri.md)"),
			mcp.Required(),
		),
	)
}

func noteDateHandler(builder *index.Builder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := commands.NewNoteDateCommand(builder, req.GetString("path", "")).Execute(ctx)
		if errors.Is(err, application.ErrNoDate) {
			return mcp.NewToolResultText("Not a dated note."), nil
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(date.Format("2006-01-02")), nil
	}
}

// --- timeline ---

func timelineTool() mcp.Tool {
	return mcp.NewTool("timeline",
		mcp.WithDescription("List all daily notes oldest first, with runs of missing days collapsed into gap markers."),
		mcp.WithString("active_date",
			mcp.Description("Optional date to mark as active (YYYY-MM-DD)"),
		),
	)
}

func timelineHandler(builder *index.Builder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var active time.Time
		if arg := req.GetString("active_date", ""); arg != "" {
			var err error
			if active, err = application.ParseDay(arg); err != nil {
				return toolError(err)
			}
		}

		items, err := commands.NewTimelineCommand(builder, active, domain.DayOf(time.Now())).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(items) == 0 {
			return mcp.NewToolResultText("No daily notes."), nil
		}

		var sb strings.Builder
		for _, item := range items {
			sb.WriteString(formatNavItem(item))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatNavItem(item domain.NavItem) string {
	if item.Kind == domain.NavGap {
		return fmt.Sprintf("%s  (%d missing days)", item.Date.Format("2006-01-02"), item.GapDays)
	}

	var marks []string
	if item.IsActive {
		marks = append(marks, "active")
	}
	if item.IsCurrent {
		marks = append(marks, "today")
	}
	line := fmt.Sprintf("%s  %s", item.Date.Format("2006-01-02"), item.Note.ID)
	if len(marks) > 0 {
		line += "  [" + strings.Join(marks, ", ") + "]"
	}
	return line
}
