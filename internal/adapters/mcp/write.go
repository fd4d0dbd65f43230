package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/application"
	"daybook/internal/application/commands"
	"daybook/internal/index"
	"daybook/internal/ports"
)

// RegisterWriteTools adds the mutating vault tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, source ports.NoteSource, builder *index.Builder) {
	s.AddTool(createNoteTool(), createNoteHandler(source, builder))
	s.AddTool(rebuildTool(), rebuildHandler(builder))
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create the daily note for a date at its canonical vault path. Returns the existing note if one is already there."),
		mcp.WithString("date",
			mcp.Description("Calendar date (YYYY-MM-DD, today, yesterday, tomorrow)"),
			mcp.Required(),
		),
	)
}

func createNoteHandler(source ports.NoteSource, builder *index.Builder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := application.ParseDay(req.GetString("date", ""))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewCreateNoteCommand(source, builder, date).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Note.ID), nil
	}
}

// --- rebuild ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild",
		mcp.WithDescription("Rebuild the note index from the vault. Safe to call redundantly."),
	)
}

func rebuildHandler(builder *index.Builder) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewRebuildCommand(builder).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"Indexed %d daily notes out of %d files in %s.",
			stats.NotesIndexed, stats.FilesListed, stats.Duration.Round(time.Millisecond),
		)), nil
	}
}
