package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const reportURI = "docck://report"

// registerResources registers all docck MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath, version string) {
	s.AddResource(
		mcplib.NewResource(
			reportURI,
			"Documentation Report",
			mcplib.WithResourceDescription("Documentation check report for the project, using its .docck.yaml settings"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath, version),
	)
}

func handleReportResource(projectPath, version string) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc, err := newService(ctx, projectPath, version, false)
		if err != nil {
			return nil, err
		}
		report, err := svc.CheckPath(ctx, projectPath)
		if err != nil {
			return nil, fmt.Errorf("check failed: %w", err)
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      reportURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
