package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"daybook/internal/adapters/filesystem"
	mcpadapter "daybook/internal/adapters/mcp"
	"daybook/internal/config"
	"daybook/internal/index"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	source := filesystem.NewSource(*vaultFlag)
	builder := index.NewBuilder(source)
	if _, err := builder.Rebuild(); err != nil {
		log.Fatalf("daybook-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"daybook-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, builder)
	mcpadapter.RegisterWriteTools(mcpServer, source, builder)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("daybook-mcp: %v", err)
	}
}
