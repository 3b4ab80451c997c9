package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/brand-auditor/internal/types"
)

var (
	fontLabel = regexp.MustCompile(`(?i)^(?:primary\s+|secondary\s+)?(?:font|typeface)\s*[:\-–]\s*([A-Z][A-Za-z0-9 ]{1,30})`)
	fontUsage = regexp.MustCompile(`(?i)\buse\s+([A-Z][A-Za-z0-9]+(?:\s+[A-Z][A-Za-z0-9]+)?)\s+for\s+(headings?|titles?|body|captions?)`)
)

// parseTypography captures typeface rules from "Font: Lato" labels and
// "Use Lato for headings" statements.
func parseTypography(pageText string) []types.TypographyRule {
	var rules []types.TypographyRule
	seen := make(map[string]bool)

	add := func(family, usage, context string) {
		family = strings.TrimSpace(family)
		if family == "" {
			return
		}
		key := strings.ToLower(family + "|" + usage)
		if seen[key] {
			return
		}
		seen[key] = true
		rules = append(rules, types.TypographyRule{
			Family:  family,
			Usage:   strings.ToLower(usage),
			Context: context,
		})
	}

	for _, line := range strings.Split(pageText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := fontLabel.FindStringSubmatch(trimmed); m != nil {
			add(m[1], "", trimmed)
			continue
		}
		if m := fontUsage.FindStringSubmatch(trimmed); m != nil {
			add(m[1], m[2], trimmed)
		}
	}

	return rules
}
