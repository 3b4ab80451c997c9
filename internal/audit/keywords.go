package audit

import (
	"fmt"
	"strings"

	"github.com/jonathan/brand-auditor/internal/types"
)

// keywordHit records one forbidden keyword occurrence in asset copy.
type keywordHit struct {
	Keyword string `json:"keyword"`
	Line    int    `json:"line"`
}

// checkForbiddenKeywords scans the asset's copy text for the kit's forbidden
// vocabulary, case-insensitively, line by line. No copy text or no forbidden
// list is vacuous compliance.
func checkForbiddenKeywords(copyText string, forbidden []string) types.AuditResult {
	result := types.AuditResult{Type: types.CheckKeywords}

	if copyText == "" {
		result.Status = types.StatusPass
		result.Metric = "No copy text to check"
		return result
	}
	if len(forbidden) == 0 {
		result.Status = types.StatusPass
		result.Metric = "Brand kit bans no keywords"
		return result
	}

	var hits []keywordHit
	for lineNum, line := range strings.Split(copyText, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range forbidden {
			needle := strings.ToLower(strings.TrimSpace(kw))
			if needle == "" {
				continue
			}
			if strings.Contains(lower, needle) {
				hits = append(hits, keywordHit{Keyword: kw, Line: lineNum + 1})
				break // One hit per line is enough for a verdict.
			}
		}
	}

	if len(hits) == 0 {
		result.Status = types.StatusPass
		result.Metric = fmt.Sprintf("Copy text avoids all %d forbidden keywords", len(forbidden))
		return result
	}

	result.Status = types.StatusFail
	result.Metric = fmt.Sprintf("Copy text contains forbidden keyword %q on line %d", hits[0].Keyword, hits[0].Line)
	result.Detail = hits
	return result
}
