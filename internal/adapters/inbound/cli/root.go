package cli

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/abdidvp/docck/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// Exit codes returned by the docck binary.
const (
	ExitOK       = 0
	ExitProblems = 1
	ExitFatal    = 2
)

var klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)

func init() {
	klog.InitFlags(klogFlags)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "docck",
		Short: "Check project documentation before you release",
		Long: "docck validates that a project descriptor carries the metadata a release needs, " +
			"that its site directory holds the expected documents, and that the URLs it references are reachable.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "0"
			if verbose {
				level = "1"
			}
			return klogFlags.Set("v", level)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every verified URL")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDocumentsCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	defer klog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// ExitCode maps the result of Execute to the process exit status. Only
// documentation problems exit with 1; every other failure is fatal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var docErr *domain.DocumentationError
	if errors.As(err, &docErr) {
		return ExitProblems
	}
	return ExitFatal
}
