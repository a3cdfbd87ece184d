package fallback

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatvu148/solar-portfolio/internal/capability"
	"github.com/nhatvu148/solar-portfolio/internal/render"
)

func failureWith(msg string) *render.Failure {
	return render.NewFailure(render.StageCreation, 0, errors.New(msg))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		failure  *render.Failure
		expected Kind
	}{
		{"nil failure", nil, KindGenericContext},
		{"empty message", &render.Failure{}, KindGenericContext},
		{"swiftshader", failureWith("GL_RENDERER = Google SwiftShader"), KindSoftwareRenderer},
		{"marker only", failureWith("SwiftShader"), KindSoftwareRenderer},
		{"lowercase does not match", failureWith("swiftshader fallback"), KindGenericContext},
		{"generic", failureWith("Error creating WebGL context."), KindGenericContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.failure); got != tt.expected {
				t.Errorf("Classify() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func hasURL(actions []Action, url string) bool {
	for _, a := range actions {
		if a.Kind == ActionOpenURL && a.URL == url {
			return true
		}
	}
	return false
}

func TestGuide_AlwaysOffersCoreActions(t *testing.T) {
	inputs := []*render.Failure{
		nil,
		{},
		failureWith("SwiftShader"),
		failureWith("context lost"),
		failureWith(strings.Repeat("x", 10000)),
	}

	for _, f := range inputs {
		g := Guide(f, 0, render.ConfigurationCount)
		kinds := map[ActionKind]bool{}
		for _, a := range g.Actions {
			kinds[a.Kind] = true
		}
		assert.True(t, kinds[ActionRetry])
		assert.True(t, kinds[ActionReload])
		assert.True(t, hasURL(g.Actions, RecommendedRuntimeURL))
		assert.NotEmpty(t, g.Headline)
		assert.NotEmpty(t, g.Detail)
		assert.NotEmpty(t, g.ErrorDetail)
	}
}

func TestGuide_SettingsLinkOnlyForSoftwareRenderer(t *testing.T) {
	soft := Guide(failureWith("Google SwiftShader"), 0, 3)
	assert.Equal(t, KindSoftwareRenderer, soft.Kind)
	assert.True(t, hasURL(soft.Actions, RuntimeSettingsURL))
	assert.Contains(t, soft.Detail, "Chrome is having issues")

	generic := Guide(failureWith("no context"), 0, 3)
	assert.Equal(t, KindGenericContext, generic.Kind)
	assert.False(t, hasURL(generic.Actions, RuntimeSettingsURL))
	assert.Equal(t, "WebGL context could not be created.", generic.Detail)
}

func TestGuide_AttemptText(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{0, "Try Different Config (1/3)"},
		{1, "Try Different Config (2/3)"},
		{2, "Try Different Config (3/3)"},
		{4, "Try Different Config (2/3)"},
	}

	for _, tt := range tests {
		g := Guide(failureWith("x"), tt.index, 3)
		require.NotEmpty(t, g.Actions)
		if g.Actions[0].Label != tt.expected {
			t.Errorf("retry label for %d = %q, expected %q", tt.index, g.Actions[0].Label, tt.expected)
		}
	}

	assert.Equal(t, "Attempt: 1 of 3 configurations", Guide(nil, 0, 0).AttemptText)
}

func TestGuide_TruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("é", MaxErrorDetailRunes*3)
	g := Guide(failureWith(long), 0, 3)
	assert.Equal(t, MaxErrorDetailRunes+1, len([]rune(g.ErrorDetail)))
	assert.True(t, strings.HasSuffix(g.ErrorDetail, "…"))

	short := Guide(failureWith("boom"), 0, 3)
	assert.Equal(t, "boom", short.ErrorDetail)
}

func TestRecommendations(t *testing.T) {
	recs := Recommendations()
	require.Len(t, recs, 3)
	assert.Equal(t, "Brave Browser", recs[0].Runtime)
	assert.Equal(t, "Works perfectly", recs[0].Note)
	assert.Equal(t, "Excellent support", recs[1].Note)
	assert.Equal(t, "May need adjustments", recs[2].Note)

	recs[0].Note = "changed"
	assert.Equal(t, "Works perfectly", Recommendations()[0].Note)
}

func TestStaticNotice(t *testing.T) {
	v := capability.Decide(capability.Signals{
		UserAgent: "Mozilla/5.0 Chrome/120.0 Safari/537.36",
		Vendor:    "Google Inc.",
		Protocol:  "https:",
		Hostname:  "portfolio.example.com",
	})
	n := StaticNotice(v)
	assert.Equal(t, capability.OverrideMarker, n.ForceFragment)
	assert.Equal(t, RecommendedRuntimeURL, n.DownloadURL)
	assert.Equal(t, "Chrome may have issues - try Brave instead", n.Recommendation)
}
