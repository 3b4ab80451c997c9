// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known brand-asset hosting platform.
type Platform string

const (
	// PlatformFrontify is the Frontify brand portal platform
	PlatformFrontify Platform = "frontify"
	// PlatformBrandfolder is the Brandfolder DAM platform
	PlatformBrandfolder Platform = "brandfolder"
	// PlatformBynder is the Bynder brand portal platform
	PlatformBynder Platform = "bynder"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the brand portal platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	// Frontify patterns
	if strings.Contains(host, "frontify.com") ||
		strings.Contains(host, "brand.frontify.com") {
		return PlatformFrontify
	}

	// Brandfolder patterns
	if strings.Contains(host, "brandfolder.com") {
		return PlatformBrandfolder
	}

	// Bynder patterns
	if strings.Contains(host, "bynder.com") ||
		strings.Contains(host, "getbynder.com") {
		return PlatformBynder
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformFrontify:
		return []string{
			".page-content",
			".guideline-content",
			".block-text",
			"#content",
		}
	case PlatformBrandfolder:
		return []string{
			".brandguide-content",
			".bf-content",
			".section-content",
			".content",
		}
	case PlatformBynder:
		return []string{
			"[data-component='guideline-page']",
			".guidelines-page",
			".chapter-content",
			".content",
		}
	default:
		return GuidelinePageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Download and share widgets
		".download-panel",
		".asset-download",
		".share-buttons",
		".social-share",
		".social-links",

		// Login walls and upsells
		".login-prompt",
		".signup-banner",
		".upgrade-banner",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	// Platform-specific noise selectors
	switch platform {
	case PlatformFrontify:
		return append(common,
			".navigation-tree",
			".page-footer",
			".search-overlay",
		)
	case PlatformBrandfolder:
		return append(common,
			".bf-nav",
			".asset-modal",
			".collection-sidebar",
		)
	case PlatformBynder:
		return append(common,
			"[data-component='chapter-nav']",
			".portal-footer",
			".asset-bank-widget",
		)
	default:
		return common
	}
}
