//go:build !js || !wasm

package capability

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Environment variables that override the synthesized native signals
const (
	EnvUserAgent = "PORTFOLIO_USER_AGENT"
	EnvVendor    = "PORTFOLIO_VENDOR"
	EnvProtocol  = "PORTFOLIO_PROTOCOL"
	EnvHostname  = "PORTFOLIO_HOSTNAME"
	EnvFragment  = "PORTFOLIO_FRAGMENT"
	EnvBrand     = "PORTFOLIO_BRAND_CHECK"
)

// Native defaults: an app bundle is served from a local origin
const (
	NativeProtocol = "app:"
	NativeHostname = LoopbackHostname
)

// envProber synthesizes signals for desktop and mobile builds
type envProber struct {
	lookup    func(string) (string, bool)
	fragments FragmentSource
	version   string
}

// NewProber returns the prober for the current build target
func NewProber(fragments FragmentSource, version string) Prober {
	return &envProber{
		lookup:    os.LookupEnv,
		fragments: fragments,
		version:   version,
	}
}

// Probe reads the environment overrides on top of the synthesized identity
func (p *envProber) Probe() Signals {
	signals := Signals{
		UserAgent: fmt.Sprintf("Fyne/%s (%s; %s)", p.version, runtime.GOOS, runtime.GOARCH),
		Protocol:  NativeProtocol,
		Hostname:  NativeHostname,
	}
	if p.fragments != nil {
		signals.Fragment = p.fragments.GetFragment()
	}

	if v, ok := p.lookup(EnvUserAgent); ok {
		signals.UserAgent = v
	}
	if v, ok := p.lookup(EnvVendor); ok {
		signals.Vendor = v
	}
	if v, ok := p.lookup(EnvProtocol); ok {
		signals.Protocol = v
	}
	if v, ok := p.lookup(EnvHostname); ok {
		signals.Hostname = v
	}
	if v, ok := p.lookup(EnvFragment); ok && strings.TrimSpace(v) != "" {
		signals.Fragment = NormalizeFragment(v)
	}
	if v, ok := p.lookup(EnvBrand); ok {
		signals.BrandCheck = v == "1" || v == "true"
	}
	return signals
}
