package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/docck/internal/domain"
)

func newDocumentsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "documents <packaging>",
		Short: "List the documents a packaging kind must provide",
		Long: "Print the site documents expected for a packaging kind and the file patterns, " +
			"relative to the site directory, that satisfy each of them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.PackagingKind(args[0])
			policy, ok := domain.PolicyFor(kind)
			if !ok {
				return fmt.Errorf("unknown packaging %q (valid: %v)", kind, domain.KnownPackagingKinds())
			}

			docs := policy.ExpectedDocuments()
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(docs)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Documents expected for %s projects:\n", kind)
			for _, d := range docs {
				fmt.Fprintf(out, "\n  %s\n", strings.Join(d.Names, " | "))
				for _, p := range d.Patterns() {
					fmt.Fprintf(out, "    %s\n", p)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the documents as JSON")

	return cmd
}
