// Package types provides type definitions for structured data used throughout the brand-auditor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/brand-auditor/internal/colors"

// ColorReference points at a color either by swatch name or by literal value.
// It is resolved once per audit against the brand kit rather than scattering
// string/tuple comparisons through the checks.
type ColorReference struct {
	Name    string      `json:"name,omitempty"`
	Literal *colors.RGB `json:"literal,omitempty"`
}

// NamedColor creates a reference to a named swatch.
func NamedColor(name string) ColorReference {
	return ColorReference{Name: name}
}

// LiteralColor creates a reference to a literal RGB value.
func LiteralColor(rgb colors.RGB) ColorReference {
	return ColorReference{Literal: &rgb}
}

// IsNamed reports whether the reference resolves through a swatch name.
func (r ColorReference) IsNamed() bool {
	return r.Name != ""
}

// ColorUsageRule constrains which text colors may appear on a background.
// AllowedText and ForbiddenText are disjoint after resolution.
type ColorUsageRule struct {
	Background    ColorReference   `json:"background"`
	AllowedText   []ColorReference `json:"allowed_text,omitempty"`
	ForbiddenText []ColorReference `json:"forbidden_text,omitempty"`
	Context       string           `json:"context"`
}

// TypographyRule captures a typeface constraint from the guideline document.
type TypographyRule struct {
	Family  string `json:"family"`
	Usage   string `json:"usage,omitempty"`
	Context string `json:"context,omitempty"`
}

// ExtractedGuidelines is the structured rule record produced once per
// guideline document. It is passed by value into synthesis and never mutated
// afterward.
type ExtractedGuidelines struct {
	PrimaryColors     []colors.Swatch  `json:"primary_colors"`
	RichColors        []colors.Swatch  `json:"rich_colors"`
	TypographyRules   []TypographyRule `json:"typography_rules,omitempty"`
	ColorUsageRules   []ColorUsageRule `json:"color_usage_rules,omitempty"`
	VoiceAttributes   []string         `json:"voice_attributes,omitempty"`
	ForbiddenKeywords []string         `json:"forbidden_keywords,omitempty"`
}

// ColorCount returns the total number of colors the extractor found.
func (g *ExtractedGuidelines) ColorCount() int {
	return len(g.PrimaryColors) + len(g.RichColors)
}
