package fallback

import "github.com/nhatvu148/solar-portfolio/internal/capability"

// Rating grades how well a runtime renders the scene
type Rating string

const (
	RatingPerfect     Rating = "perfect"
	RatingExcellent   Rating = "excellent"
	RatingAdjustments Rating = "adjustments"
)

// Recommendation is one row of the runtime recommendation table
type Recommendation struct {
	Runtime string
	Note    string
	Rating  Rating
}

// Recommendations returns the fixed recommendation table, best first
func Recommendations() []Recommendation {
	return []Recommendation{
		{Runtime: "Brave Browser", Note: "Works perfectly", Rating: RatingPerfect},
		{Runtime: "Firefox", Note: "Excellent support", Rating: RatingExcellent},
		{Runtime: "Chrome", Note: "May need adjustments", Rating: RatingAdjustments},
	}
}

// Notice is the compatibility notice of the static view
type Notice struct {
	Title          string
	Body           string
	Recommendation string
	DownloadLabel  string
	DownloadURL    string
	ForceLabel     string
	ForceFragment  string
}

// StaticNotice builds the notice for a runtime that skipped the scene
func StaticNotice(v capability.Verdict) Notice {
	return Notice{
		Title:          "Browser Compatibility Notice",
		Body:           "Your current browser may have limitations with advanced 3D graphics. For the best experience, we recommend:",
		Recommendation: capability.Recommend(v),
		DownloadLabel:  "Download Brave",
		DownloadURL:    RecommendedRuntimeURL,
		ForceLabel:     "Try 3D Version",
		ForceFragment:  capability.OverrideMarker,
	}
}
