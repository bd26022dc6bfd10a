package cliconfig

import (
	"os"
	"strings"
)

// Environment variable names. List values are comma-separated.
const (
	EnvCassettePath    = "VCR_CASSETTE_PATH"
	EnvStorage         = "VCR_STORAGE"
	EnvLibraryHooks    = "VCR_LIBRARY_HOOKS"
	EnvRequestMatchers = "VCR_REQUEST_MATCHERS"
	EnvWhiteList       = "VCR_WHITE_LIST"
	EnvBlackList       = "VCR_BLACK_LIST"
	EnvLogLevel        = "VCR_LOG_LEVEL"
	EnvLogFormat       = "VCR_LOG_FORMAT"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvCassettePath); v != "" {
		cfg.CassettePath = v
		cfg.Sources["cassettePath"] = SourceEnv
	}
	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage = v
		cfg.Sources["storage"] = SourceEnv
	}
	if v, ok := os.LookupEnv(EnvLibraryHooks); ok {
		cfg.LibraryHooks = splitList(v)
		cfg.Sources["libraryHooks"] = SourceEnv
	}
	if v, ok := os.LookupEnv(EnvRequestMatchers); ok {
		cfg.RequestMatchers = splitList(v)
		cfg.Sources["requestMatchers"] = SourceEnv
	}
	if v, ok := os.LookupEnv(EnvWhiteList); ok {
		cfg.WhiteList = splitList(v)
		cfg.Sources["whiteList"] = SourceEnv
	}
	if v, ok := os.LookupEnv(EnvBlackList); ok {
		cfg.BlackList = splitList(v)
		cfg.Sources["blackList"] = SourceEnv
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}

// splitList splits a comma-separated value, dropping blanks. A variable set
// to the empty string yields an empty, non-nil list.
func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
