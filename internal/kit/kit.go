// Package kit synthesizes the canonical brand kit from extracted guideline
// rules and statistics learned from an existing-asset corpus.
package kit

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/corpus"
	"github.com/jonathan/brand-auditor/internal/types"
)

// Options tunes synthesis behavior.
type Options struct {
	// Tolerance is the distance below which a corpus-derived color is
	// treated as confirmation of an existing swatch rather than a new color.
	Tolerance float64
	// TopColors caps how many corpus-derived colors are kept.
	TopColors int
	// TopKeywords caps the frequent-keyword ranking.
	TopKeywords int
}

// DefaultOptions returns the synthesis defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:   colors.DefaultTolerance,
		TopColors:   corpus.DefaultTopColors,
		TopKeywords: 10,
	}
}

var validate = validator.New()

// Generate merges extracted guideline rules with signals learned from the
// asset corpus into one brand kit. Extracted named swatches are
// authoritative: a corpus-derived dominant color within tolerance of an
// existing swatch is discarded as a duplicate. When the extracted rules are
// absent or carry no colors, the kit falls back entirely to corpus
// statistics.
func Generate(brandName string, assets []types.Asset, extracted *types.ExtractedGuidelines, opts Options) (*types.BrandKit, error) {
	if opts.Tolerance <= 0 {
		opts.Tolerance = colors.DefaultTolerance
	}
	if opts.TopColors <= 0 {
		opts.TopColors = corpus.DefaultTopColors
	}
	if opts.TopKeywords <= 0 {
		opts.TopKeywords = 10
	}

	if extracted == nil {
		extracted = &types.ExtractedGuidelines{}
	}

	brandKit := &types.BrandKit{
		BrandName:            brandName,
		BrandVoiceAttributes: extracted.VoiceAttributes,
		ForbiddenKeywords:    extracted.ForbiddenKeywords,
		ColorUsageRules:      extracted.ColorUsageRules,
	}

	// Named swatches from the guidelines are kept verbatim.
	rich := append([]colors.Swatch{}, extracted.RichColors...)
	if len(rich) == 0 {
		rich = append(rich, extracted.PrimaryColors...)
	}

	known := append(append([]colors.Swatch{}, extracted.PrimaryColors...), rich...)
	for _, learned := range rankCorpusColors(assets, opts) {
		if _, dist := colors.Nearest(learned, known); dist <= opts.Tolerance {
			// Corpus color confirms an existing swatch; not added again.
			continue
		}
		swatch := colors.NewSwatch("Learned "+learned.Hex(), learned)
		rich = append(rich, swatch)
		known = append(known, swatch)
	}
	brandKit.RichColors = rich

	// primary_colors always carries plain hex strings for fast comparison,
	// even when it draws from the same source as rich_colors.
	primary := extracted.PrimaryColors
	if len(primary) == 0 {
		primary = rich
	}
	for _, s := range primary {
		brandKit.PrimaryColors = append(brandKit.PrimaryColors, s.Hex)
	}

	texts := make([]string, 0, len(assets))
	for _, a := range assets {
		if a.Text != "" {
			texts = append(texts, a.Text)
		}
	}
	brandKit.FrequentKeywords = corpus.KeywordFrequency(texts, opts.TopKeywords)

	if err := validate.Struct(brandKit); err != nil {
		return nil, &SynthesisError{
			Message: fmt.Sprintf("brand kit for %q is incomplete", brandName),
			Cause:   err,
		}
	}
	return brandKit, nil
}

// rankCorpusColors ranks dominant colors across the corpus by frequency.
// Colors within tolerance of an already-ranked entry count toward that entry
// instead of starting a new one; ties keep first-seen order.
func rankCorpusColors(assets []types.Asset, opts Options) []colors.RGB {
	type entry struct {
		rgb   colors.RGB
		count int
	}
	var entries []*entry

	for _, asset := range assets {
		for _, c := range asset.DominantColors {
			merged := false
			for _, e := range entries {
				if colors.Distance(c, e.rgb) <= opts.Tolerance {
					e.count++
					merged = true
					break
				}
			}
			if !merged {
				entries = append(entries, &entry{rgb: c, count: 1})
			}
		}
	}

	// Stable sort keeps first-seen order among equal counts.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].count > entries[j-1].count; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	if len(entries) > opts.TopColors {
		entries = entries[:opts.TopColors]
	}
	ranked := make([]colors.RGB, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, e.rgb)
	}
	return ranked
}
