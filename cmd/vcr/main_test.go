package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/getmockd/vcr/pkg/cli"
)

// TestMain registers the vcr command so scripts can exec it without a
// separate build step.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"vcr": cli.Execute,
	}))
}

// TestCLI runs the scripts in testdata. Scripts start from a clean
// environment, so no VCR_* variable leaks in from the caller.
func TestCLI(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}
