package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcdickinson/apidocs/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server on stdio",
	Run:   runMCP,
}

func runMCP(cmd *cobra.Command, args []string) {
	// stdout carries the protocol.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})))

	ctx := context.Background()
	cfg, project, err := loadProject(ctx)
	if err != nil {
		fatal("failed to load documentation", err)
	}

	idx, _, err := buildIndex(ctx, cfg, project)
	if err != nil {
		fatal("failed to build search index", err)
	}
	defer idx.Close()

	if err := mcp.NewServer("apidocs", version, project, idx).Run(); err != nil {
		fatal("MCP server error", err)
	}
}
