package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]\s+|\n`)
	// backgroundRef matches "on Aubergine", "against the Core Aubergine", or
	// "over White" style background mentions.
	backgroundRef = regexp.MustCompile(`\b(?:[Oo]n|[Aa]gainst|[Oo]ver)\s+(?:a\s+|the\s+)?([A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*){0,3})`)
)

// negativeCues mark the start of a forbidden-color span inside a sentence.
var negativeCues = []string{"avoid", "never", "don't", "do not", "not "}

// parseUsageRules turns narrative usage statements ("On Aubergine, use White
// text; never use Green") into ColorUsageRule records. Background mentions
// that do not resolve to a known swatch are discarded with a warning rather
// than stored unresolved.
func parseUsageRules(pageText string, known []colors.Swatch) []types.ColorUsageRule {
	if len(known) == 0 {
		return nil
	}

	// Longest names first so "Core Aubergine" wins over a hypothetical
	// "Aubergine" prefix match.
	names := make([]string, 0, len(known))
	seen := make(map[string]bool)
	for _, s := range known {
		lower := strings.ToLower(s.Name)
		if !seen[lower] {
			seen[lower] = true
			names = append(names, s.Name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	var rules []types.ColorUsageRule
	for _, sentence := range sentenceSplit.Split(pageText, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if rule, ok := parseUsageSentence(sentence, names); ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

func parseUsageSentence(sentence string, names []string) (types.ColorUsageRule, bool) {
	loc := backgroundRef.FindStringSubmatchIndex(sentence)
	if loc == nil {
		return types.ColorUsageRule{}, false
	}
	captured := sentence[loc[2]:loc[3]]

	background := resolveSwatchName(captured, names)
	if background == "" {
		warnf("discarding usage rule with unresolved background %q in: %s", captured, sentence)
		return types.ColorUsageRule{}, false
	}

	lower := strings.ToLower(sentence)
	// The captured phrase marks the background mention; swatch mentions
	// overlapping it are not foreground candidates.
	bgStart, bgEnd := loc[2], loc[3]

	// Classify every other swatch mention by the polarity cue nearest before
	// it: a negative cue earlier in the sentence makes the mention forbidden.
	var allowed, forbidden []types.ColorReference
	forbiddenSet := make(map[string]bool)
	allowedSet := make(map[string]bool)
	for _, name := range names {
		nameLower := strings.ToLower(name)
		for idx := strings.Index(lower, nameLower); idx >= 0; {
			if idx < bgStart || idx >= bgEnd {
				if lastNegativeCueBefore(lower, idx) >= 0 {
					if !forbiddenSet[nameLower] {
						forbiddenSet[nameLower] = true
						forbidden = append(forbidden, types.NamedColor(name))
					}
				} else if !allowedSet[nameLower] {
					allowedSet[nameLower] = true
					allowed = append(allowed, types.NamedColor(name))
				}
			}
			next := strings.Index(lower[idx+1:], nameLower)
			if next < 0 {
				break
			}
			idx += 1 + next
		}
	}

	// Allowed and forbidden stay disjoint after resolution; an explicit
	// prohibition outweighs an earlier permissive mention.
	filtered := allowed[:0]
	for _, ref := range allowed {
		if !forbiddenSet[strings.ToLower(ref.Name)] {
			filtered = append(filtered, ref)
		}
	}
	allowed = filtered

	if len(allowed) == 0 && len(forbidden) == 0 {
		return types.ColorUsageRule{}, false
	}

	return types.ColorUsageRule{
		Background:    types.NamedColor(background),
		AllowedText:   allowed,
		ForbiddenText: forbidden,
		Context:       sentence,
	}, true
}

// resolveSwatchName matches a captured background phrase against known swatch
// names, tolerating a trailing noun ("Aubergine backgrounds") and partial
// captures ("Core Aubergine" mentioned as "Aubergine" resolves only when a
// known name ends with the captured word).
func resolveSwatchName(candidate string, names []string) string {
	candLower := strings.ToLower(strings.TrimSpace(candidate))
	for _, name := range names {
		nameLower := strings.ToLower(name)
		if candLower == nameLower || strings.HasPrefix(candLower, nameLower+" ") {
			return name
		}
	}
	for _, name := range names {
		nameLower := strings.ToLower(name)
		if strings.HasSuffix(nameLower, " "+firstWord(candLower)) {
			return name
		}
	}
	return ""
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func lastNegativeCueBefore(lower string, pos int) int {
	last := -1
	for _, cue := range negativeCues {
		idx := strings.LastIndex(lower[:pos], cue)
		if idx > last {
			last = idx
		}
	}
	return last
}
