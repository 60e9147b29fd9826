package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/pagelint/pagelint/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pagelint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the pagelint MCP server (stdio)",
		Long:  "Start the pagelint MCP server using stdio transport so automation agents can run audits and remediations.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewPagelintMCPServer()
			return server.ServeStdio(s)
		},
	}
}
