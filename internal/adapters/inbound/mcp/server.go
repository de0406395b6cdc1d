package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDocckMCPServer creates a new MCP server with all docck tools and
// resources registered. The projectPath is the root directory checks run
// against unless a tool call names another one.
func NewDocckMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"docck",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, version)
	registerResources(s, projectPath, version)

	return s
}
