package cliconfig

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/getmockd/vcr/pkg/config"
	"github.com/getmockd/vcr/pkg/logging"
)

// Apply writes every set value into cfg. Custom matchers are registered
// first so that RequestMatchers may name them. Each setting is applied
// independently and all failures are returned together.
func (c *CLIConfig) Apply(cfg *config.Configuration) error {
	var errs []error

	for _, m := range c.CustomMatchers {
		matcher, err := CompileMatcher(m.Expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("customMatchers[%s]: %w", m.Name, err))
			continue
		}
		if err := cfg.AddRequestMatcher(m.Name, matcher); err != nil {
			errs = append(errs, fmt.Errorf("customMatchers: %w", err))
		}
	}

	if c.LibraryHooks != nil {
		if err := cfg.EnableLibraryHooks(c.LibraryHooks...); err != nil {
			errs = append(errs, fmt.Errorf("libraryHooks: %w", err))
		}
	}
	if c.RequestMatchers != nil {
		if err := cfg.EnableRequestMatchers(c.RequestMatchers...); err != nil {
			errs = append(errs, fmt.Errorf("requestMatchers: %w", err))
		}
	}
	if c.Storage != "" {
		if err := cfg.SetStorage(c.Storage); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}
	if c.CassettePath != "" {
		if err := cfg.SetCassettePath(c.CassettePath); err != nil {
			errs = append(errs, fmt.Errorf("cassettePath: %w", err))
		}
	}
	if c.WhiteList != nil {
		cfg.SetWhiteList(c.WhiteList...)
	}
	if c.BlackList != nil {
		cfg.SetBlackList(c.BlackList...)
	}

	return errors.Join(errs...)
}

// Logger builds the logger described by the logging settings.
func (c *CLIConfig) Logger() *slog.Logger {
	return logging.New(logging.Parse(c.LogLevel, c.LogFormat))
}
