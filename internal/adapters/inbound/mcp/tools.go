package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/docck/internal/adapters/outbound/config"
	"github.com/abdidvp/docck/internal/adapters/outbound/descriptor"
	"github.com/abdidvp/docck/internal/adapters/outbound/fileset"
	"github.com/abdidvp/docck/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/docck/internal/adapters/outbound/history"
	"github.com/abdidvp/docck/internal/adapters/outbound/httpprobe"
	"github.com/abdidvp/docck/internal/application"
	"github.com/abdidvp/docck/internal/domain"
)

// registerTools registers all docck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath, version string) {
	s.AddTool(
		mcplib.NewTool("docck_check",
			mcplib.WithDescription("Check the project descriptor, its modules and their site documentation. Returns the aggregate report as JSON"),
			mcplib.WithString("path",
				mcplib.Description("Project root, relative to the server's project (defaults to the project itself)"),
			),
			mcplib.WithBoolean("offline",
				mcplib.Description("Skip network access; URLs are reported as not verified"),
			),
		),
		handleCheck(projectPath, version),
	)

	s.AddTool(
		mcplib.NewTool("docck_verify_url",
			mcplib.WithDescription("Verify a single URL the way descriptor URLs are verified"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL to verify"),
			),
			mcplib.WithString("description",
				mcplib.Description("What the URL points to, used in findings (e.g. project site)"),
			),
			mcplib.WithBoolean("offline",
				mcplib.Description("Skip network access"),
			),
		),
		handleVerifyURL(projectPath, version),
	)

	s.AddTool(
		mcplib.NewTool("docck_expected_documents",
			mcplib.WithDescription("List the site documents a packaging kind must provide and the file patterns that satisfy them"),
			mcplib.WithString("packaging",
				mcplib.Required(),
				mcplib.Description("Packaging kind (plugin, library, aggregator)"),
			),
		),
		handleExpectedDocuments(),
	)
}

// newService wires a CheckService for one tool call.
func newService(ctx context.Context, projectPath, version string, offline bool) (*application.CheckService, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if offline {
		cfg.Offline = true
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = httpprobe.UserAgent(version)
	}

	return application.NewCheckService(cfg,
		descriptor.New(cfg.SiteDirectory),
		httpprobe.New(httpprobe.NewClient(ctx, cfg), userAgent),
		fileset.New(),
		application.WithGitInfo(gitinfo.New()),
		application.WithHistory(history.New()),
	), nil
}

func handleCheck(projectPath, version string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		root := projectPath
		if p, _ := args["path"].(string); p != "" {
			if filepath.IsAbs(p) {
				root = p
			} else {
				root = filepath.Join(projectPath, p)
			}
		}
		offline, _ := args["offline"].(bool)

		svc, err := newService(ctx, root, version, offline)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		report, err := svc.CheckPath(ctx, root)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

type urlVerification struct {
	URL       string           `json:"url"`
	Reachable bool             `json:"reachable"`
	Findings  []domain.Finding `json:"findings"`
}

func handleVerifyURL(projectPath, version string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rawURL, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		args := request.GetArguments()
		description, _ := args["description"].(string)
		if description == "" {
			description = "URL"
		}
		offline, _ := args["offline"].(bool)

		svc, err := newService(ctx, projectPath, version, offline)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		findings := svc.VerifyURL(ctx, rawURL, description, projectPath)
		return jsonResult(urlVerification{
			URL:       rawURL,
			Reachable: len(findings) == 0,
			Findings:  findings,
		})
	}
}

func handleExpectedDocuments() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kind, err := request.RequireString("packaging")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		policy, ok := domain.PolicyFor(domain.PackagingKind(kind))
		if !ok {
			return errorResult(fmt.Sprintf("unknown packaging %q (valid: %v)", kind, domain.KnownPackagingKinds())), nil
		}

		type document struct {
			domain.ExpectedDocument
			Patterns []string `json:"patterns"`
		}
		var docs []document
		for _, d := range policy.ExpectedDocuments() {
			docs = append(docs, document{ExpectedDocument: d, Patterns: d.Patterns()})
		}
		return jsonResult(docs)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
