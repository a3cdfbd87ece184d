package capability

// Recommend returns a one-line note about how well the runtime renders the scene
func Recommend(v Verdict) string {
	switch {
	case v.IsKnownGoodRuntime:
		return "Brave - Perfect for 3D graphics!"
	case v.IsFirefox:
		return "Firefox - Excellent WebGL support"
	case v.IsSafari:
		return "Safari - Good 3D performance"
	case v.WillHaveIssues():
		return "Chrome may have issues - try Brave instead"
	case v.IsKnownProblematicRuntime:
		return "Chrome - Ensure hardware acceleration is enabled"
	default:
		return "Browser compatibility unknown"
	}
}
