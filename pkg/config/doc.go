// Package config provides the vcr configuration registry.
//
// A Configuration decides which named implementations are active:
//   - library hooks: how outgoing requests are intercepted
//   - storage: the cassette file format
//   - request matchers: how an intercepted request is matched to a recording
//
// It also holds the cassette directory and the path allow/deny lists read by
// the source filter.
//
// Hooks and matchers default to "everything available". Enabling an explicit
// set restricts them, but results are always returned in registration order:
//
//	cfg := config.New()
//	if err := cfg.EnableRequestMatchers("url", "method"); err != nil {
//	    return err
//	}
//	cfg.RequestMatcherNames() // [method url]
//
// Every validating call either succeeds completely or leaves the
// configuration untouched. Errors list every offending name at once.
//
// A Configuration is meant to be built once, configured, then shared
// read-only. It is not safe for concurrent mutation.
package config
