package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/vcr/pkg/cliconfig"
	"github.com/getmockd/vcr/pkg/config"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath   string
	jsonOutput   bool
	logLevel     string
	cassettePath string
	storage      string
}

// NewRootCommand builds the vcr command tree.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vcr",
		Short: "vcr inspects record/replay settings and cassettes",
		Long: `vcr resolves the record/replay configuration the way a test suite would
and reports on it.

Settings are read from a config file (--config, or .vcr.yaml in the current
directory), VCR_* environment variables and flags, in increasing priority.`,
		// No Run function here means 'vcr' with no args will print help text by default.
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Config file path (default: .vcr.yaml if present)")
	pf.BoolVar(&flags.jsonOutput, "json", false, "Output command results in JSON format")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.cassettePath, "cassette-path", "", "Directory holding cassette files")
	pf.StringVar(&flags.storage, "storage", "", "Cassette storage format (json, yaml)")

	rootCmd.AddCommand(
		newConfigCmd(flags),
		newValidateCmd(flags),
		newCassetteCmd(flags),
		newPathsCmd(flags),
		newVersionCmd(flags),
	)
	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
// This is called by main.main().
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// load merges file, environment and flag settings.
func (f *globalFlags) load() (*cliconfig.CLIConfig, error) {
	settings, err := cliconfig.LoadAll(f.configPath)
	if err != nil {
		return nil, err
	}
	cliconfig.MergeConfig(settings, &cliconfig.CLIConfig{
		CassettePath: f.cassettePath,
		Storage:      f.storage,
		LogLevel:     f.logLevel,
	}, cliconfig.SourceFlag)
	return settings, nil
}

// resolve loads the settings and applies them to a fresh Configuration.
// The Configuration is returned even when applying fails so callers can
// report on the settings that did take effect.
func (f *globalFlags) resolve() (*cliconfig.CLIConfig, *config.Configuration, error) {
	settings, err := f.load()
	if err != nil {
		return nil, nil, err
	}
	cfg := config.New(config.WithLogger(settings.Logger()))
	return settings, cfg, settings.Apply(cfg)
}
