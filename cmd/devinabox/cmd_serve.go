package main

import (
	"context"

	"github.com/spf13/cobra"

	"devinabox/internal/logging"
	"devinabox/internal/mcpserve"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio for editor integration",
	Long: `Starts an MCP server over stdin/stdout exposing the box's build, verify
and report operations as tools.

The server monitors for parent process death. When the client exits or
restarts, the server self-terminates instead of lingering as an orphan.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := mcpserve.NewServer()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserve.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting devinabox MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
