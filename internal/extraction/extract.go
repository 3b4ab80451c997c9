package extraction

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/document"
	"github.com/jonathan/brand-auditor/internal/types"
)

// Extract parses an opened guideline document into a validated rule record.
// It is a pure, idempotent function: the same document always yields the same
// guidelines. Fails with *ExtractionError when the document has zero pages or
// no color mentions survive every parsing strategy.
func Extract(doc *document.Document) (*types.ExtractedGuidelines, error) {
	if doc == nil || doc.PageCount() == 0 {
		return nil, &ExtractionError{Message: "document has no pages"}
	}

	guidelines := &types.ExtractedGuidelines{
		PrimaryColors: []colors.Swatch{},
		RichColors:    []colors.Swatch{},
	}

	// First pass: swatch pairing across all pages, so usage-rule resolution
	// on any page can reference swatches declared on another.
	totalMentions := 0
	for _, page := range doc.Pages {
		scan := findSwatches(page.Text)
		totalMentions += scan.mentions
		guidelines.PrimaryColors = appendSwatches(guidelines.PrimaryColors, guidelines.RichColors, scan.primary)
		guidelines.RichColors = appendSwatches(guidelines.RichColors, guidelines.PrimaryColors, scan.rich)
	}

	if totalMentions == 0 {
		return nil, &ExtractionError{Message: "no colors found after exhausting parsing strategies"}
	}

	known := append(append([]colors.Swatch{}, guidelines.PrimaryColors...), guidelines.RichColors...)

	// Second pass: narrative rules and verbal identity.
	for _, page := range doc.Pages {
		guidelines.ColorUsageRules = append(guidelines.ColorUsageRules, parseUsageRules(page.Text, known)...)
		guidelines.TypographyRules = append(guidelines.TypographyRules, parseTypography(page.Text)...)
		guidelines.VoiceAttributes = mergeStrings(guidelines.VoiceAttributes, parseVoice(page.Text))
		guidelines.ForbiddenKeywords = mergeStrings(guidelines.ForbiddenKeywords, parseForbiddenKeywords(page.Text))
	}

	return guidelines, nil
}

// appendSwatches adds swatches not already present (by lowercased name) in
// either existing bucket.
func appendSwatches(dst, other, add []colors.Swatch) []colors.Swatch {
	for _, s := range add {
		if containsSwatch(dst, s.Name) || containsSwatch(other, s.Name) {
			continue
		}
		dst = append(dst, s)
	}
	return dst
}

func containsSwatch(swatches []colors.Swatch, name string) bool {
	for _, s := range swatches {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

// mergeStrings appends items not already present, preserving first-seen
// order so repeated extraction stays deterministic.
func mergeStrings(dst, add []string) []string {
	for _, item := range add {
		found := false
		for _, existing := range dst {
			if strings.EqualFold(existing, item) {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, item)
		}
	}
	return dst
}

// warnf logs a recoverable parsing problem to stderr.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
