package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/getmockd/vcr/pkg/cli/internal/output"
	"github.com/getmockd/vcr/pkg/config"
)

// ConfigOutput is the resolved configuration as printed by "vcr config".
type ConfigOutput struct {
	CassettePath      string   `json:"cassettePath"`
	CassettePathError string   `json:"cassettePathError,omitempty"`
	Storage           string   `json:"storage"`
	LibraryHooks      []string `json:"libraryHooks"`
	RequestMatchers   []string `json:"requestMatchers"`

	// AllLibraryHooks and AllRequestMatchers are true while nothing was
	// enabled explicitly and every registered entry is active.
	AllLibraryHooks    bool `json:"allLibraryHooks"`
	AllRequestMatchers bool `json:"allRequestMatchers"`

	WhiteList []string          `json:"whiteList"`
	BlackList []string          `json:"blackList"`
	Available AvailableOutput   `json:"available"`
	Sources   map[string]string `json:"sources,omitempty"`
	Errors    []string          `json:"errors,omitempty"`
}

// AvailableOutput lists every registered name.
type AvailableOutput struct {
	LibraryHooks    []string `json:"libraryHooks"`
	RequestMatchers []string `json:"requestMatchers"`
	Storages        []string `json:"storages"`
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration a test suite would run with after the config file,
environment and flags have been applied.

Settings that fail to apply are reported as warnings and leave the
registry defaults in place. Use "vcr validate" to fail on them.`,
		Example: `  # Show the resolved configuration
  vcr config

  # Output as JSON
  vcr config --json

  # Use a specific config file
  vcr config -c ./ci/vcr.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, cfg, applyErr := flags.resolve()
			if cfg == nil {
				return applyErr
			}

			out := describeConfig(cfg)
			out.Sources = settings.Sources
			for _, err := range splitErrors(applyErr) {
				out.Errors = append(out.Errors, err.Error())
			}

			if flags.jsonOutput {
				return output.JSON(cmd.OutOrStdout(), out)
			}
			for _, msg := range out.Errors {
				output.Warn(cmd.ErrOrStderr(), "%s", msg)
			}
			printConfigText(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func describeConfig(cfg *config.Configuration) ConfigOutput {
	out := ConfigOutput{
		Storage:         cfg.StorageName(),
		LibraryHooks:    cfg.LibraryHookNames(),
		RequestMatchers: cfg.RequestMatcherNames(),
		WhiteList:       cfg.WhiteList(),
		BlackList:       cfg.BlackList(),
		Available: AvailableOutput{
			LibraryHooks:    cfg.AvailableLibraryHooks(),
			RequestMatchers: cfg.AvailableRequestMatchers(),
			Storages:        cfg.AvailableStorages(),
		},
	}

	_, explicit := cfg.EnabledLibraryHooks()
	out.AllLibraryHooks = !explicit
	_, explicit = cfg.EnabledRequestMatchers()
	out.AllRequestMatchers = !explicit

	path, err := cfg.CassettePath()
	var pathErr *config.CassettePathError
	switch {
	case err == nil:
		out.CassettePath = path
	case errors.As(err, &pathErr):
		out.CassettePath = pathErr.Path
		out.CassettePathError = err.Error()
	default:
		out.CassettePathError = err.Error()
	}
	return out
}

func printConfigText(w io.Writer, out ConfigOutput) {
	tw := output.Table(w)
	_, _ = fmt.Fprintf(tw, "cassette path:\t%s\n", out.CassettePath)
	_, _ = fmt.Fprintf(tw, "storage:\t%s\n", out.Storage)
	_, _ = fmt.Fprintf(tw, "library hooks:\t%s%s\n", output.List(out.LibraryHooks), allMarker(out.AllLibraryHooks))
	_, _ = fmt.Fprintf(tw, "request matchers:\t%s%s\n", output.List(out.RequestMatchers), allMarker(out.AllRequestMatchers))
	_, _ = fmt.Fprintf(tw, "white list:\t%s\n", output.List(out.WhiteList))
	_, _ = fmt.Fprintf(tw, "black list:\t%s\n", output.List(out.BlackList))
	_ = tw.Flush()

	if out.CassettePathError != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", out.CassettePathError)
	}

	_, _ = fmt.Fprintln(w, "\nAvailable:")
	tw = output.Table(w)
	_, _ = fmt.Fprintf(tw, "  library hooks:\t%s\n", output.List(out.Available.LibraryHooks))
	_, _ = fmt.Fprintf(tw, "  request matchers:\t%s\n", output.List(out.Available.RequestMatchers))
	_, _ = fmt.Fprintf(tw, "  storages:\t%s\n", output.List(out.Available.Storages))
	_ = tw.Flush()

	if len(out.Sources) > 0 {
		_, _ = fmt.Fprintln(w, "\nSources:")
		tw = output.Table(w)
		for _, key := range slices.Sorted(maps.Keys(out.Sources)) {
			_, _ = fmt.Fprintf(tw, "  %s:\t%s\n", key, out.Sources[key])
		}
		_ = tw.Flush()
	}
}

func allMarker(all bool) string {
	if all {
		return " (all)"
	}
	return ""
}

// splitErrors flattens an errors.Join result into its parts.
func splitErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
