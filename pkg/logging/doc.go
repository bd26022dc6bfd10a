// Package logging builds the *slog.Logger used by vcr.
//
// The CLI turns its logLevel/logFormat settings into a logger with
//
//	logger := logging.New(logging.Parse("debug", "json"))
//
// Library components take a *slog.Logger through a WithLogger option and fall
// back to Nop. The default level is warn, so a passing test suite prints
// nothing.
package logging
