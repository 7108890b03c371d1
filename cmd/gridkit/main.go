// gridkit renders, exports, and browses invoice list views from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/ledgerdesk/gridkit/internal/cli"
)

// version is overridden at build time via -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Build-time version injection.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}
