package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nhatvu148/solar-portfolio/internal/capability"
)

var probeFormats = map[string]bool{"yaml": true, "text": true}

type probeOptions struct {
	format     string
	userAgent  string
	vendor     string
	protocol   string
	hostname   string
	fragment   string
	brandCheck bool
}

func newProbeCmd() *cobra.Command {
	opts := &probeOptions{}
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the capability gate decision for this or the given environment",
		Long: "probe reads the environment the way the app does at start and prints the\n" +
			"signals, the verdict and whether the 3D scene would be skipped. Flags\n" +
			"replace individual signals, which is handy to check a browser's user agent.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "text", "Output format: yaml or text")
	f.StringVar(&opts.userAgent, "user-agent", "", "User agent signal")
	f.StringVar(&opts.vendor, "vendor", "", "Vendor signal")
	f.StringVar(&opts.protocol, "protocol", "", "Protocol signal, e.g. https:")
	f.StringVar(&opts.hostname, "hostname", "", "Hostname signal")
	f.StringVar(&opts.fragment, "fragment", "", "Location fragment signal")
	f.BoolVar(&opts.brandCheck, "brand-check", false, "Result of the runtime brand check")
	return cmd
}

func runProbe(cmd *cobra.Command, opts *probeOptions) error {
	if !probeFormats[opts.format] {
		return fmt.Errorf("unknown format %q: use yaml or text", opts.format)
	}

	signals := capability.NewProber(nil, version).Probe()
	f := cmd.Flags()
	if f.Changed("user-agent") {
		signals.UserAgent = opts.userAgent
	}
	if f.Changed("vendor") {
		signals.Vendor = opts.vendor
	}
	if f.Changed("protocol") {
		signals.Protocol = opts.protocol
	}
	if f.Changed("hostname") {
		signals.Hostname = opts.hostname
	}
	if f.Changed("fragment") {
		signals.Fragment = capability.NormalizeFragment(opts.fragment)
	}
	if f.Changed("brand-check") {
		signals.BrandCheck = opts.brandCheck
	}

	report := capability.Assess(signals)
	out := cmd.OutOrStdout()
	if opts.format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
	writeReport(out, report)
	return nil
}

func writeReport(out io.Writer, r capability.Report) {
	fmt.Fprintf(out, "User agent:       %s\n", r.Signals.UserAgent)
	fmt.Fprintf(out, "Vendor:           %s\n", r.Signals.Vendor)
	fmt.Fprintf(out, "Origin:           %s//%s\n", r.Signals.Protocol, r.Signals.Hostname)
	fmt.Fprintf(out, "Fragment:         %s\n", r.Signals.Fragment)
	fmt.Fprintf(out, "Known good:       %t\n", r.Verdict.IsKnownGoodRuntime)
	fmt.Fprintf(out, "Problematic:      %t\n", r.Verdict.IsKnownProblematicRuntime)
	fmt.Fprintf(out, "Sandboxed:        %t\n", r.Verdict.IsSandboxedOrigin)
	fmt.Fprintf(out, "Forced:           %t\n", r.Verdict.ForceFullRendering)
	fmt.Fprintf(out, "Will have issues: %t\n", r.WillHaveIssues)
	if r.SkipFullRendering {
		fmt.Fprintf(out, "Presenter:        static\n")
	} else {
		fmt.Fprintf(out, "Presenter:        scene\n")
	}
	fmt.Fprintf(out, "Recommendation:   %s\n", r.Recommendation)
}
