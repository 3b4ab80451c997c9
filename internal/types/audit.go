package types

// CheckType identifies which compliance check produced a result.
type CheckType string

// Check type constants, in audit execution order.
const (
	CheckPalette    CheckType = "PALETTE"
	CheckTypography CheckType = "TYPOGRAPHY"
	CheckKeywords   CheckType = "KEYWORDS"
)

// CheckStatus is the verdict of a single compliance check.
type CheckStatus string

// Check status constants.
const (
	StatusPass CheckStatus = "PASS"
	StatusFail CheckStatus = "FAIL"
	StatusWarn CheckStatus = "WARN"
)

// AuditResult is one check verdict with a human-readable metric explaining
// it. One asset audit produces an ordered sequence of these; order follows
// check execution, not severity.
type AuditResult struct {
	Type   CheckType   `json:"type"`
	Status CheckStatus `json:"status"`
	Metric string      `json:"metric"`
	Detail any         `json:"detail,omitempty"`
}

// TextRegion is a localized text area with its detected background and
// foreground colors. Colors arrive in any format the normalizer accepts
// (hex string, triple, delimited string); localization itself is the job of
// an external feature-detection step.
type TextRegion struct {
	BBox       [4]int `json:"bbox"`
	Background any    `json:"background"`
	Foreground any    `json:"foreground"`
}

// VisualAsset is one asset to audit. DetectedColors holds the dominant and
// background colors supplied by the external detector, again in any
// normalizer-accepted format.
type VisualAsset struct {
	Name           string       `json:"name"`
	DetectedColors []any        `json:"detected_colors,omitempty"`
	TextRegions    []TextRegion `json:"text_regions,omitempty"`
	CopyText       string       `json:"copy_text,omitempty"`
}
