package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		signals  Signals
		expected string
	}{
		{"brave", Signals{UserAgent: braveAgent, Vendor: "Google Inc."}, "Brave - Perfect for 3D graphics!"},
		{"firefox", Signals{UserAgent: firefoxAgent}, "Firefox - Excellent WebGL support"},
		{"safari", Signals{UserAgent: safariAgent, Vendor: "Apple Computer, Inc."}, "Safari - Good 3D performance"},
		{"chrome sandboxed", chromeOnPublicOrigin(), "Chrome may have issues - try Brave instead"},
		{"chrome local", Signals{UserAgent: chromeAgent, Vendor: "Google Inc.", Protocol: "http:", Hostname: "localhost"}, "Chrome - Ensure hardware acceleration is enabled"},
		{"unknown", Signals{UserAgent: "curl/8.0"}, "Browser compatibility unknown"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Recommend(Decide(test.signals)))
		})
	}
}
