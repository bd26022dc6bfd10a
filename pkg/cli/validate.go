package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/vcr/pkg/cli/internal/output"
)

// ErrInvalidConfig is returned by "vcr validate" when any setting fails to apply.
var ErrInvalidConfig = errors.New("configuration is invalid")

// ValidateOutput is the JSON result of "vcr validate".
type ValidateOutput struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func newValidateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every configured setting applies",
		Long: `Apply the config file, environment and flags to a fresh configuration and
report every setting that fails: unknown hooks, matchers or storage, custom
matchers that do not compile, and a missing cassette directory.

Exits non-zero when anything fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, cfg, applyErr := flags.resolve()
			if cfg == nil {
				return applyErr
			}

			errs := splitErrors(applyErr)
			// An unset cassette path falls back to the default, which is
			// only checked on use.
			if _, err := cfg.CassettePath(); err != nil && settings.CassettePath == "" {
				errs = append(errs, fmt.Errorf("cassettePath: %w", err))
			}

			out := ValidateOutput{Valid: len(errs) == 0}
			for _, err := range errs {
				out.Errors = append(out.Errors, err.Error())
			}

			if flags.jsonOutput {
				if err := output.JSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else if out.Valid {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
			} else {
				for _, msg := range out.Errors {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), msg)
				}
			}

			if !out.Valid {
				return ErrInvalidConfig
			}
			return nil
		},
	}
}
