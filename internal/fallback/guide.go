package fallback

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nhatvu148/solar-portfolio/internal/render"
)

// Kind is the classification of a rendering failure
type Kind string

const (
	// KindSoftwareRenderer means the runtime fell back to a software rasterizer
	KindSoftwareRenderer Kind = "software_renderer"
	// KindGenericContext is every other context failure
	KindGenericContext Kind = "generic_context"
)

// SoftwareRendererMarker is matched case-sensitively against failure messages
const SoftwareRendererMarker = "SwiftShader"

// External help links
const (
	RecommendedRuntimeURL = "https://brave.com/"
	RuntimeFlagsURL       = "chrome://flags"
	RuntimeSettingsURL    = "chrome://settings/system"
)

// MaxErrorDetailRunes bounds the error detail shown to the user
const MaxErrorDetailRunes = 500

// ActionKind identifies what an action button does
type ActionKind string

const (
	ActionRetry   ActionKind = "retry"
	ActionReload  ActionKind = "reload"
	ActionOpenURL ActionKind = "open_url"
)

// Action is one button of the failure view
type Action struct {
	Kind    ActionKind
	Label   string
	URL     string
	Primary bool
}

// Solution is one remediation hint
type Solution struct {
	Title string
	Hint  string
}

// Guidance is everything the failure view displays for one failure
type Guidance struct {
	Kind        Kind
	Headline    string
	Detail      string
	ErrorDetail string
	AttemptText string
	Solutions   []Solution
	Actions     []Action
}

// Classify inspects the failure message. A nil failure is a generic failure.
func Classify(failure *render.Failure) Kind {
	if failure == nil {
		return KindGenericContext
	}
	if strings.Contains(failure.Message, SoftwareRendererMarker) {
		return KindSoftwareRenderer
	}
	return KindGenericContext
}

// Guide builds the remediation for failure. attemptIndex is the configuration
// index that failed and total the number of configurations.
func Guide(failure *render.Failure, attemptIndex, total int) Guidance {
	if total <= 0 {
		total = render.ConfigurationCount
	}
	attempt := render.WrapIndex(attemptIndex, total) + 1

	kind := Classify(failure)
	g := Guidance{
		Kind:        kind,
		Headline:    "3D Graphics Failed to Load",
		Detail:      "WebGL context could not be created.",
		ErrorDetail: errorDetail(failure),
		AttemptText: fmt.Sprintf("Attempt: %d of %d configurations", attempt, total),
		Solutions: []Solution{
			{Title: "Use Brave Browser", Hint: "Works perfectly"},
			{Title: "Firefox", Hint: "Also should work well"},
			{Title: "Chrome flags", Hint: `chrome://flags → "Override software rendering list"`},
			{Title: "Hardware acceleration", Hint: "Chrome settings → Advanced → System"},
			{Title: "Incognito mode", Hint: "Sometimes bypasses restrictions"},
		},
		Actions: []Action{
			{Kind: ActionRetry, Label: fmt.Sprintf("Try Different Config (%d/%d)", attempt, total), Primary: true},
			{Kind: ActionReload, Label: "Reload Page"},
			{Kind: ActionOpenURL, Label: "Download Brave", URL: RecommendedRuntimeURL},
		},
	}

	if kind == KindSoftwareRenderer {
		g.Detail = "Chrome is having issues with 3D rendering in this environment."
		g.Actions = append(g.Actions, Action{
			Kind:  ActionOpenURL,
			Label: "Open Chrome Settings",
			URL:   RuntimeSettingsURL,
		})
	}
	return g
}

func errorDetail(failure *render.Failure) string {
	if failure == nil || failure.Message == "" {
		return "No error details available"
	}
	msg := failure.Message
	if utf8.RuneCountInString(msg) <= MaxErrorDetailRunes {
		return msg
	}
	runes := []rune(msg)
	return string(runes[:MaxErrorDetailRunes]) + "…"
}
