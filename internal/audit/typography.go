package audit

import (
	"fmt"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

// typographyDetail is the structured payload attached to a color-usage
// verdict.
type typographyDetail struct {
	Region      [4]int  `json:"region"`
	Background  string  `json:"background"`
	Foreground  string  `json:"foreground"`
	RuleContext string  `json:"rule_context"`
	Distance    float64 `json:"background_distance"`
}

// checkTextRegion evaluates one detected text region against the kit's
// color-usage rules, emitting one result per matched rule. A background with
// no matching rule is skipped entirely: absence of a rule is not a
// violation.
func checkTextRegion(region types.TextRegion, rules []types.ColorUsageRule, res *resolver, tolerance float64) []types.AuditResult {
	background, err := colors.Normalize(region.Background)
	if err != nil {
		return []types.AuditResult{inputWarning("background", region, err)}
	}
	foreground, err := colors.Normalize(region.Foreground)
	if err != nil {
		return []types.AuditResult{inputWarning("foreground", region, err)}
	}

	var results []types.AuditResult
	for _, rule := range rules {
		ruleBG, ok := res.reference(rule.Background)
		if !ok {
			// Unresolvable rule backgrounds are extractor bugs; skip, never
			// fault on them here.
			continue
		}
		dist := colors.Distance(background, ruleBG)
		if dist > tolerance {
			continue
		}

		results = append(results, judgeForeground(region, rule, foreground, dist, res, tolerance))
	}
	return results
}

// judgeForeground applies one matched rule to the region's text color.
func judgeForeground(region types.TextRegion, rule types.ColorUsageRule, foreground colors.RGB, bgDist float64, res *resolver, tolerance float64) types.AuditResult {
	detail := typographyDetail{
		Region:      region.BBox,
		Background:  describeReference(rule.Background),
		Foreground:  foreground.Hex(),
		RuleContext: rule.Context,
		Distance:    bgDist,
	}
	result := types.AuditResult{Type: types.CheckTypography, Detail: detail}

	for _, ref := range rule.ForbiddenText {
		if res.matchesReference(foreground, ref, tolerance) {
			result.Status = types.StatusFail
			result.Metric = fmt.Sprintf("Text color %s on background %q is forbidden (%s)",
				foreground.Hex(), describeReference(rule.Background), rule.Context)
			return result
		}
	}

	if len(rule.AllowedText) == 0 {
		result.Status = types.StatusPass
		result.Metric = fmt.Sprintf("Text color %s on background %q has no restriction beyond the forbidden list",
			foreground.Hex(), describeReference(rule.Background))
		return result
	}

	for _, ref := range rule.AllowedText {
		if res.matchesReference(foreground, ref, tolerance) {
			result.Status = types.StatusPass
			result.Metric = fmt.Sprintf("Text color %s on background %q matches allowed color %q",
				foreground.Hex(), describeReference(rule.Background), describeReference(ref))
			return result
		}
	}

	result.Status = types.StatusFail
	result.Metric = fmt.Sprintf("Text color %s is not among the allowed colors on background %q (%s)",
		foreground.Hex(), describeReference(rule.Background), rule.Context)
	return result
}

// inputWarning records a malformed region color without aborting the rest of
// the audit.
func inputWarning(which string, region types.TextRegion, err error) types.AuditResult {
	inputErr := &AuditInputError{Message: fmt.Sprintf("malformed %s color in text region %v", which, region.BBox), Cause: err}
	return types.AuditResult{
		Type:   types.CheckTypography,
		Status: types.StatusWarn,
		Metric: inputErr.Error(),
	}
}

func describeReference(ref types.ColorReference) string {
	if ref.IsNamed() {
		return ref.Name
	}
	if ref.Literal != nil {
		return ref.Literal.Hex()
	}
	return "(unresolved)"
}
