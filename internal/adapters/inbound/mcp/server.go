package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPagelintMCPServer creates an MCP server with the pagelint tools and
// resources registered, exposing audit and remediation to automation agents
// over stdio.
func NewPagelintMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"pagelint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}
