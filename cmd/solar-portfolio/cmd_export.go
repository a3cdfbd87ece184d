package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhatvu148/solar-portfolio/internal/content"
	"github.com/nhatvu148/solar-portfolio/internal/platform"
)

type exportOptions struct {
	force  bool
	reveal bool
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export-content [path]",
		Short: "Write the built-in content as a YAML file to edit and load with --content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.force, "force", false, "Overwrite an existing file")
	f.BoolVar(&opts.reveal, "reveal", false, "Show the file in the system file manager")
	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *exportOptions) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := platform.DefaultContentPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := platform.WriteFileAll(path, content.DefaultDocument(), opts.force); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		return fmt.Errorf("export content: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Content written to %s\n", path)

	if opts.reveal {
		if err := platform.OpenFileInManager(path); err != nil {
			return fmt.Errorf("reveal %s: %w", path, err)
		}
	}
	return nil
}
