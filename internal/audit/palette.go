package audit

import (
	"fmt"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

// paletteDetail is the structured payload attached to a palette verdict.
type paletteDetail struct {
	CheckedColors int     `json:"checked_colors"`
	WorstColor    string  `json:"worst_color,omitempty"`
	NearestBrand  string  `json:"nearest_brand,omitempty"`
	WorstDistance float64 `json:"worst_distance,omitempty"`
}

// checkPaletteCompliance verifies that every detected color sits within
// tolerance of some kit color. An empty detected sequence is vacuous
// compliance, not an error. On failure the metric names the worst-offending
// detected color, its nearest brand color, and the measured distance.
func checkPaletteCompliance(detected []colors.RGB, res *resolver, tolerance float64) types.AuditResult {
	result := types.AuditResult{Type: types.CheckPalette}

	if len(detected) == 0 {
		result.Status = types.StatusPass
		result.Metric = "No dominant colors detected"
		return result
	}

	worstDist := -1.0
	var worstColor colors.RGB
	var worstNearest colors.Swatch
	for _, c := range detected {
		nearest, dist, ok := res.nearest(c)
		if !ok {
			result.Status = types.StatusFail
			result.Metric = "Brand kit has no colors to compare against"
			return result
		}
		if dist > worstDist {
			worstDist = dist
			worstColor = c
			worstNearest = nearest
		}
	}

	detail := paletteDetail{
		CheckedColors: len(detected),
		WorstColor:    worstColor.Hex(),
		NearestBrand:  worstNearest.Name,
		WorstDistance: worstDist,
	}

	if worstDist <= tolerance {
		result.Status = types.StatusPass
		result.Metric = fmt.Sprintf("All %d detected colors within tolerance %.0f of the brand palette", len(detected), tolerance)
	} else {
		result.Status = types.StatusFail
		result.Metric = fmt.Sprintf("Color %s is off-palette: nearest brand color %q is %.1f away (tolerance %.0f)",
			worstColor.Hex(), worstNearest.Name, worstDist, tolerance)
	}
	result.Detail = detail
	return result
}
