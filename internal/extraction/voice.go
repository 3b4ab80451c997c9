package extraction

import (
	"regexp"
	"strings"
)

var (
	voiceInline     = regexp.MustCompile(`(?i)^(?:brand\s+)?(?:voice|tone|personality)\s*[:\-–]\s*(.+)$`)
	forbiddenInline = regexp.MustCompile(`(?i)\b(?:avoid|never (?:say|use|write))\s+(?:words?|terms?|phrases?)?\s*(?:like|such as)?\s*[:\-]?\s*(.+)$`)
	listSplit       = regexp.MustCompile(`[,;/]|\band\b|\bor\b`)
	quoted          = regexp.MustCompile(`["“”']([^"“”']+)["“”']`)
)

// parseVoice collects voice/tone adjectives: from inline "Voice: bold,
// playful, human" statements anywhere, and from list items under a heading
// mentioning voice, tone, or personality.
func parseVoice(pageText string) []string {
	var attrs []string
	seen := make(map[string]bool)
	inVoiceSection := false

	add := func(raw string) {
		attr := strings.Trim(strings.TrimSpace(raw), ".\"'“”")
		if attr == "" || len(strings.Fields(attr)) > 3 || !startsWithLetter(attr) {
			return
		}
		key := strings.ToLower(attr)
		if !seen[key] {
			seen[key] = true
			attrs = append(attrs, attr)
		}
	}

	for _, line := range strings.Split(pageText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := voiceInline.FindStringSubmatch(trimmed); m != nil {
			for _, part := range listSplit.Split(m[1], -1) {
				add(part)
			}
			continue
		}

		if isHeading(trimmed) {
			lower := strings.ToLower(trimmed)
			inVoiceSection = strings.Contains(lower, "voice") ||
				strings.Contains(lower, "tone") ||
				strings.Contains(lower, "personality")
			continue
		}

		if inVoiceSection && isListItem(trimmed) {
			for _, part := range listSplit.Split(stripListMarker(trimmed), -1) {
				add(part)
			}
		}
	}

	return attrs
}

// parseForbiddenKeywords collects explicitly banned vocabulary: quoted or
// comma-separated terms after "avoid"/"never say" cues, and list items under
// a heading that bans wording.
func parseForbiddenKeywords(pageText string) []string {
	var keywords []string
	seen := make(map[string]bool)
	inForbiddenSection := false

	add := func(raw string) {
		kw := strings.ToLower(strings.Trim(strings.TrimSpace(raw), ".\"'“”"))
		if kw == "" || len(strings.Fields(kw)) > 3 {
			return
		}
		if !seen[kw] {
			seen[kw] = true
			keywords = append(keywords, kw)
		}
	}

	for _, line := range strings.Split(pageText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isHeading(trimmed) {
			lower := strings.ToLower(trimmed)
			inForbiddenSection = strings.Contains(lower, "avoid") ||
				strings.Contains(lower, "never say") ||
				strings.Contains(lower, "forbidden")
			continue
		}

		if m := forbiddenInline.FindStringSubmatch(trimmed); m != nil {
			if qs := quoted.FindAllStringSubmatch(m[1], -1); len(qs) > 0 {
				for _, q := range qs {
					add(q[1])
				}
			} else {
				for _, part := range listSplit.Split(m[1], -1) {
					add(part)
				}
			}
			continue
		}

		if inForbiddenSection && isListItem(trimmed) {
			add(stripListMarker(trimmed))
		}
	}

	return keywords
}

func isListItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ")
}

func stripListMarker(line string) string {
	return strings.TrimLeft(line, "-*• ")
}
