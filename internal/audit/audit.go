package audit

import (
	"fmt"
	"os"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

// Options tunes audit behavior.
type Options struct {
	// Tolerance is the maximum RGB distance at which a detected color still
	// matches a brand color.
	Tolerance float64
}

// DefaultOptions returns the audit defaults.
func DefaultOptions() Options {
	return Options{Tolerance: colors.DefaultTolerance}
}

// Audit runs every compliance check for one asset against one brand kit and
// returns the results in check-execution order: palette, then one per
// matched rule and text region, then the forbidden-keyword scan.
//
// Audit is stateless and performs no mutation of kit: the same kit value may
// be shared across arbitrarily many concurrent audits.
func Audit(asset *types.VisualAsset, brandKit *types.BrandKit, opts Options) ([]types.AuditResult, error) {
	if asset == nil {
		return nil, &AuditInputError{Message: "asset is nil"}
	}
	if brandKit == nil {
		return nil, &AuditInputError{Message: "brand kit is nil"}
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = colors.DefaultTolerance
	}

	res := newResolver(brandKit)
	results := make([]types.AuditResult, 0, 2+len(asset.TextRegions))

	detected, warn := normalizeDetected(asset.DetectedColors)
	if warn != nil {
		results = append(results, *warn)
	} else {
		results = append(results, checkPaletteCompliance(detected, res, opts.Tolerance))
	}

	for _, region := range asset.TextRegions {
		results = append(results, checkTextRegion(region, brandKit.ColorUsageRules, res, opts.Tolerance)...)
	}

	results = append(results, checkForbiddenKeywords(asset.CopyText, brandKit.ForbiddenKeywords))

	return results, nil
}

// normalizeDetected converts the detector's heterogeneous color values to
// canonical form. Individual malformed entries are skipped with a warning;
// when every entry is malformed the palette check is replaced by a WARN
// verdict so the failure is visible without aborting the other checks.
func normalizeDetected(values []any) ([]colors.RGB, *types.AuditResult) {
	detected := make([]colors.RGB, 0, len(values))
	var firstErr error
	for _, v := range values {
		rgb, err := colors.Normalize(v)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "Warning: skipping malformed detected color %v: %v\n", v, err)
			continue
		}
		detected = append(detected, rgb)
	}

	if len(detected) == 0 && firstErr != nil {
		inputErr := &AuditInputError{Message: "no detected color is in an accepted format", Cause: firstErr}
		return nil, &types.AuditResult{
			Type:   types.CheckPalette,
			Status: types.StatusWarn,
			Metric: inputErr.Error(),
		}
	}
	return detected, nil
}
