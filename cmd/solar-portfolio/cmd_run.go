package main

import (
	"github.com/spf13/cobra"

	"github.com/nhatvu148/solar-portfolio/internal/launcher"
)

type runOptions struct {
	verbose  bool
	fragment string
	content  string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the portfolio window (default)",
		RunE:  func(cmd *cobra.Command, _ []string) error { return runApp(opts) },
	}
	bindRunFlags(cmd, opts)
	return cmd
}

func bindRunFlags(cmd *cobra.Command, opts *runOptions) {
	f := cmd.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging and frame rate overlay")
	f.StringVar(&opts.fragment, "fragment", "", "Location fragment to persist before start, e.g. #force-3d")
	f.StringVar(&opts.content, "content", "", "Content YAML file to load and watch (env "+launcher.EnvContentFile+")")
}

func runApp(opts *runOptions) error {
	return launcher.Run(launcher.Options{
		Verbose:     opts.verbose,
		Fragment:    opts.fragment,
		ContentFile: opts.content,
		Version:     version,
	})
}
