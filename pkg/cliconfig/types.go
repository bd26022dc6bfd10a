// Package cliconfig loads vcr settings from a YAML file and the environment
// and applies them to a config.Configuration.
package cliconfig

// CLIConfig represents the settings a surrounding tool applies to a
// config.Configuration. Values come from several sources with the following
// precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Config file (--config, or .vcr.yaml in the current directory)
// 4. Registry defaults (lowest priority)
//
// A nil list or empty string means "not set": the registry default stays.
type CLIConfig struct {
	CassettePath string `yaml:"cassettePath,omitempty" json:"cassettePath,omitempty"`
	Storage      string `yaml:"storage,omitempty" json:"storage,omitempty"`

	LibraryHooks    []string        `yaml:"libraryHooks,omitempty" json:"libraryHooks,omitempty"`
	RequestMatchers []string        `yaml:"requestMatchers,omitempty" json:"requestMatchers,omitempty"`
	CustomMatchers  []CustomMatcher `yaml:"customMatchers,omitempty" json:"customMatchers,omitempty"`

	WhiteList []string `yaml:"whiteList,omitempty" json:"whiteList,omitempty"`
	BlackList []string `yaml:"blackList,omitempty" json:"blackList,omitempty"`

	// Logging settings
	LogLevel  string `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
	LogFormat string `yaml:"logFormat,omitempty" json:"logFormat,omitempty"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`
}

// CustomMatcher is a request matcher written as an expression, registered
// under Name before the enabled matchers are applied.
type CustomMatcher struct {
	Name string `yaml:"name" json:"name"`
	Expr string `yaml:"expr" json:"expr"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceFlag    = "flag"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the log format used when none is configured.
const DefaultLogFormat = "text"

// NewDefault returns a CLIConfig that leaves every registry default in
// place.
func NewDefault() *CLIConfig {
	return &CLIConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources: map[string]string{
			"logLevel":  SourceDefault,
			"logFormat": SourceDefault,
		},
	}
}
