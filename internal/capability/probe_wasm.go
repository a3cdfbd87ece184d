//go:build js && wasm

package capability

import "syscall/js"

// jsProber reads navigator and location from the hosting page
type jsProber struct{}

// NewProber returns the prober for the current build target. On the web the
// fragment comes from location.hash only, so fragments is not consulted.
func NewProber(_ FragmentSource, version string) Prober {
	return &jsProber{}
}

// Probe reads the browser signals; missing globals yield empty strings
func (p *jsProber) Probe() Signals {
	var signals Signals

	navigator := js.Global().Get("navigator")
	if navigator.Truthy() {
		signals.UserAgent = jsString(navigator.Get("userAgent"))
		signals.Vendor = jsString(navigator.Get("vendor"))

		// navigator.brave.isBrave() returns a promise; its presence is the brand check
		brave := navigator.Get("brave")
		if brave.Truthy() && brave.Get("isBrave").Type() == js.TypeFunction {
			signals.BrandCheck = true
		}
	}

	location := js.Global().Get("location")
	if location.Truthy() {
		signals.Protocol = jsString(location.Get("protocol"))
		signals.Hostname = jsString(location.Get("hostname"))
		signals.Fragment = jsString(location.Get("hash"))
	}
	return signals
}

func jsString(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
