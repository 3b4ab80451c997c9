package corpus

import (
	"regexp"
	"sort"
	"strings"
)

// stopwords are excluded from keyword frequency ranking.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "you": true, "your": true, "our": true, "are": true,
	"was": true, "has": true, "have": true, "from": true, "not": true,
	"all": true, "can": true, "will": true, "its": true, "their": true,
	"more": true, "about": true, "into": true, "when": true, "how": true,
	"what": true, "who": true, "out": true, "use": true, "get": true,
}

var wordPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z']+`)

// KeywordFrequency ranks keywords across the given texts by descending
// occurrence count, ties broken by first-seen order. Words shorter than three
// characters and stopwords are skipped.
func KeywordFrequency(texts []string, topN int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, text := range texts {
		for _, word := range wordPattern.FindAllString(text, -1) {
			w := strings.ToLower(word)
			if len(w) < 3 || stopwords[w] {
				continue
			}
			if _, ok := counts[w]; !ok {
				firstSeen[w] = order
				order++
			}
			counts[w]++
		}
	}

	ranked := make([]string, 0, len(counts))
	for w := range counts {
		ranked = append(ranked, w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
