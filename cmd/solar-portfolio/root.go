// solar-portfolio runs the portfolio app and its maintenance commands.
//
// Usage:
//
//	solar-portfolio [run] [--verbose] [--fragment=#force-3d] [--content=<path>]
//	solar-portfolio probe [--format=yaml|text] [--user-agent=<ua>] [--vendor=<v>] ...
//	solar-portfolio export-content [path] [--force] [--reveal]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	opts := &runOptions{}
	root := &cobra.Command{
		Use:   "solar-portfolio",
		Short: "Interactive solar system portfolio",
		Long:  "Solar Portfolio shows a personal portfolio as an animated solar system\nand falls back to a static page where 3D rendering is not expected to work.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version:      version,
		SilenceUsage: true,
		RunE:         func(cmd *cobra.Command, _ []string) error { return runApp(opts) },
	}
	bindRunFlags(root, opts)

	root.AddCommand(newRunCmd())
	root.AddCommand(newProbeCmd())
	root.AddCommand(newExportCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
