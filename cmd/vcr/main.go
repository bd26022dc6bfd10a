// vcr CLI - inspects record/replay configuration and cassettes
package main

import (
	"os"

	"github.com/getmockd/vcr/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate

	os.Exit(cli.Execute())
}
