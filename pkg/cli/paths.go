package cli

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/getmockd/vcr/pkg/cli/internal/output"
	"github.com/getmockd/vcr/pkg/filter"
)

// PathResult reports whether one path is instrumented.
type PathResult struct {
	Path    string `json:"path"`
	Allowed bool   `json:"allowed"`
}

func newPathsCmd(flags *globalFlags) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "paths [PATH...]",
		Short: "Show which source paths the white and black lists instrument",
		Long: `Check paths against the configured white and black lists. A black list
entry always wins; an empty white list allows every other path.

Without arguments every file under the current directory matching --pattern
is checked.`,
		Example: `  # Check every Go file in the module
  vcr paths

  # Check specific files
  vcr paths internal/api/client.go pkg/hook/hook.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := flags.resolve()
			if err != nil {
				return err
			}

			paths := args
			if len(paths) == 0 {
				paths, err = doublestar.Glob(os.DirFS("."), pattern, doublestar.WithFilesOnly())
				if err != nil {
					return fmt.Errorf("invalid pattern %q: %w", pattern, err)
				}
			}

			f := filter.New(cfg)
			results := make([]PathResult, 0, len(paths))
			for _, p := range paths {
				results = append(results, PathResult{Path: p, Allowed: f.Allows(p)})
			}

			if flags.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), results)
			}
			tw := output.Table(cmd.OutOrStdout())
			for _, r := range results {
				verdict := "deny"
				if r.Allowed {
					verdict = "allow"
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", verdict, r.Path)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "**/*.go", "Glob used to find files when no paths are given")
	return cmd
}
