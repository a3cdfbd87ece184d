package main

import (
	"fmt"
	"os"

	"github.com/nhatvu148/solar-portfolio/internal/launcher"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// main is the entry point used by `fyne package` and the web build. The CLI
// with flags and maintenance commands lives in cmd/solar-portfolio.
func main() {
	if err := launcher.Run(launcher.Options{Version: version}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
