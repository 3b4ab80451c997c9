package types

import "github.com/jonathan/brand-auditor/internal/colors"

// BrandKit is the canonical snapshot of a brand's colors, voice, and usage
// rules. It is created once per brand onboarding and read-shared by every
// subsequent audit run; mutation requires re-synthesis, not in-place edit.
//
// PrimaryColors stores plain hex strings for fast comparison; RichColors
// stores full swatches with names for human-facing explanations.
type BrandKit struct {
	BrandName            string           `json:"brand_name" validate:"required"`
	PrimaryColors        []string         `json:"primary_colors" validate:"required,min=1,dive,hexcolor"`
	RichColors           []colors.Swatch  `json:"rich_colors" validate:"required,min=1"`
	BrandVoiceAttributes []string         `json:"brand_voice_attributes,omitempty"`
	ForbiddenKeywords    []string         `json:"forbidden_keywords,omitempty"`
	FrequentKeywords     []string         `json:"frequent_keywords,omitempty"`
	ColorUsageRules      []ColorUsageRule `json:"color_usage_rules,omitempty"`
}

// Asset is one item of an existing-brand corpus used during synthesis.
// DominantColors may be pre-supplied by an external detector or filled in
// from ImagePath by corpus analysis; Text carries any copy associated with
// the asset for keyword statistics.
type Asset struct {
	Name           string       `json:"name"`
	ImagePath      string       `json:"image_path,omitempty"`
	DominantColors []colors.RGB `json:"dominant_colors,omitempty"`
	Text           string       `json:"text,omitempty"`
}
