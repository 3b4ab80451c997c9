package audit

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

// resolver resolves color references and detected colors against one brand
// kit. Built once per audit so the checks never do string/tuple comparisons
// themselves.
type resolver struct {
	byName   map[string]colors.RGB
	swatches []colors.Swatch
}

// newResolver indexes the kit's rich swatches plus its plain-hex primary
// colors. Primary hex entries that fail to normalize are skipped with a
// warning; they cannot occur in a kit produced by synthesis but the kit may
// have been edited in storage.
func newResolver(brandKit *types.BrandKit) *resolver {
	r := &resolver{byName: make(map[string]colors.RGB)}

	for _, s := range brandKit.RichColors {
		r.byName[strings.ToLower(s.Name)] = s.RGB
		r.swatches = append(r.swatches, s)
	}
	for _, hex := range brandKit.PrimaryColors {
		rgb, err := colors.Normalize(hex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping malformed kit color %q: %v\n", hex, err)
			continue
		}
		if _, dup := r.lookupRGB(rgb); !dup {
			r.swatches = append(r.swatches, colors.NewSwatch(hex, rgb))
		}
	}

	return r
}

// reference resolves a ColorReference to RGB. Named references resolve
// through the kit; literal references are already canonical.
func (r *resolver) reference(ref types.ColorReference) (colors.RGB, bool) {
	if ref.IsNamed() {
		rgb, ok := r.byName[strings.ToLower(ref.Name)]
		return rgb, ok
	}
	if ref.Literal != nil {
		return *ref.Literal, true
	}
	return colors.RGB{}, false
}

// nearest returns the kit swatch closest to c.
func (r *resolver) nearest(c colors.RGB) (colors.Swatch, float64, bool) {
	idx, dist := colors.Nearest(c, r.swatches)
	if idx < 0 {
		return colors.Swatch{}, 0, false
	}
	return r.swatches[idx], dist, true
}

func (r *resolver) lookupRGB(c colors.RGB) (colors.Swatch, bool) {
	for _, s := range r.swatches {
		if s.RGB == c {
			return s, true
		}
	}
	return colors.Swatch{}, false
}

// matchesReference reports whether a detected color matches a resolved
// reference within tolerance.
func (r *resolver) matchesReference(c colors.RGB, ref types.ColorReference, tolerance float64) bool {
	rgb, ok := r.reference(ref)
	if !ok {
		return false
	}
	return colors.Distance(c, rgb) <= tolerance
}
