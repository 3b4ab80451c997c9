package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://brand.frontify.com/d/abc123/guidelines", PlatformFrontify},
		{"https://acme.frontify.com/document/1", PlatformFrontify},
		{"https://brandfolder.com/acme/brand-guide", PlatformBrandfolder},
		{"https://acme.brandfolder.com/guide", PlatformBrandfolder},
		{"https://acme.bynder.com/guidelines", PlatformBynder},
		{"https://acme.getbynder.com/portal", PlatformBynder},
		{"https://www.acme.com/brand", PlatformUnknown},
		{"not a url at all ://", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	for _, platform := range []Platform{PlatformFrontify, PlatformBrandfolder, PlatformBynder} {
		selectors := PlatformContentSelectors(platform)
		assert.NotEmpty(t, selectors, "platform %s should have selectors", platform)
	}

	// Unknown platform falls back to generic guideline selectors
	assert.Equal(t, GuidelinePageSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestPlatformNoiseSelectors(t *testing.T) {
	common := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, common, ".cookie-banner")

	// Platform-specific lists extend the common set
	frontify := PlatformNoiseSelectors(PlatformFrontify)
	assert.Greater(t, len(frontify), len(common))
	assert.Contains(t, frontify, ".navigation-tree")
}
