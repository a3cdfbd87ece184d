package capability

import "strings"

// OverrideMarker in the navigable fragment forces the full scene on next load
const OverrideMarker = "#force-3d"

// Heuristic markers
const (
	ProblematicAgentMarker  = "Chrome"
	ProblematicVendorMarker = "Google Inc"
	SecureProtocol          = "https:"
	LoopbackHostname        = "localhost"
	firefoxAgentMarker      = "Firefox"
	safariAgentMarker       = "Safari"
	safariVendorMarker      = "Apple Computer"
)

// KnownGoodAgents is the allow-list of runtimes that render fine even where
// the problematic signature matches (matched by substring).
var KnownGoodAgents = []string{"Brave"}

// Verdict is derived from Signals and never mutated
type Verdict struct {
	IsKnownGoodRuntime        bool `yaml:"known_good_runtime"`
	IsKnownProblematicRuntime bool `yaml:"known_problematic_runtime"`
	IsSandboxedOrigin         bool `yaml:"sandboxed_origin"`
	ForceFullRendering        bool `yaml:"force_full_rendering"`

	// Informational, used for the recommendation line only
	IsFirefox bool `yaml:"firefox"`
	IsSafari  bool `yaml:"safari"`
}

// Decide maps signals to a verdict. It is total and has no side effects.
func Decide(s Signals) Verdict {
	allowListed := matchesAllowList(s.UserAgent)
	problematic := strings.Contains(s.UserAgent, ProblematicAgentMarker) &&
		strings.Contains(s.Vendor, ProblematicVendorMarker)

	return Verdict{
		IsKnownGoodRuntime:        allowListed || s.BrandCheck,
		IsKnownProblematicRuntime: problematic && !allowListed,
		IsSandboxedOrigin:         s.Protocol == SecureProtocol && s.Hostname != LoopbackHostname,
		ForceFullRendering:        HasOverride(s.Fragment),
		IsFirefox:                 strings.Contains(s.UserAgent, firefoxAgentMarker),
		IsSafari: strings.Contains(s.UserAgent, safariAgentMarker) &&
			strings.Contains(s.Vendor, safariVendorMarker),
	}
}

// WillHaveIssues reports whether the runtime is expected to fail creating a surface
func (v Verdict) WillHaveIssues() bool {
	return v.IsKnownProblematicRuntime && v.IsSandboxedOrigin && !v.IsKnownGoodRuntime
}

// ShouldSkipFullRendering reports whether the static view is shown instead of the scene
func ShouldSkipFullRendering(v Verdict) bool {
	if v.ForceFullRendering {
		return false
	}
	return v.WillHaveIssues()
}

// HasOverride reports whether fragment is exactly the override marker
func HasOverride(fragment string) bool {
	return fragment == OverrideMarker
}

// NormalizeFragment trims typed input and adds the leading '#', so
// "force-3d" from a flag or dialog becomes "#force-3d". Blank input stays empty.
func NormalizeFragment(input string) string {
	f := strings.TrimSpace(input)
	if f != "" && !strings.HasPrefix(f, "#") {
		f = "#" + f
	}
	return f
}

func matchesAllowList(userAgent string) bool {
	for _, name := range KnownGoodAgents {
		if strings.Contains(userAgent, name) {
			return true
		}
	}
	return false
}
