// Package cli implements the vcr command: it resolves record/replay settings
// from a config file, the environment and flags, and reports on them and on
// recorded cassettes.
package cli
