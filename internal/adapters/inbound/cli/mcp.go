package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	mcpadapter "github.com/abdidvp/docck/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve docck checks over the Model Context Protocol",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the docck MCP server on stdio",
		Long: "Start an MCP server on stdin/stdout exposing the docck_check, docck_verify_url " +
			"and docck_expected_documents tools and the docck://report resource.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveServeRoot(projectPath)
			if err != nil {
				return err
			}
			klog.FromContext(cmd.Context()).V(1).Info("Serving MCP", "project", root)
			return server.ServeStdio(mcpadapter.NewDocckMCPServer(root, version))
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root checks run against")

	return cmd
}

func resolveServeRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project path %s is not a directory", abs)
	}
	return abs, nil
}
