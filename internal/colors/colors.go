// Package colors provides canonical color normalization and distance math
// shared by guideline extraction, brand kit synthesis, and auditing.
package colors

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTolerance is the maximum Euclidean RGB distance at which a detected
// color still counts as a match to a brand color. Callers may override it per
// operation; nothing in this package hard-codes it into a comparison.
const DefaultTolerance = 60.0

// RGB is the canonical numeric color form. Components are in [0,255].
type RGB [3]uint8

// Hex returns the color as an uppercase "#RRGGBB" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2])
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c[0], c[1], c[2])
}

// Swatch pairs a human-readable name with a color. RGB and Hex always agree;
// NewSwatch derives Hex from the canonical RGB form.
type Swatch struct {
	Name string `json:"name"`
	RGB  RGB    `json:"rgb"`
	Hex  string `json:"hex"`
}

// NewSwatch creates a swatch with Hex derived from rgb.
func NewSwatch(name string, rgb RGB) Swatch {
	return Swatch{Name: name, RGB: rgb, Hex: rgb.Hex()}
}

// hexPattern matches a 6-digit hex color with optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// nonDigits splits delimited strings like "100-100-100" or "100, 100, 100".
var nonDigits = regexp.MustCompile(`[^0-9]+`)

// Normalize converts a heterogeneous color value into canonical RGB form.
// Accepted inputs: a 6-digit hex string (with or without '#'), an integer
// triple, or a string of three integers separated by any non-digit delimiter.
// Returns a *FormatError when the value cannot be interpreted as exactly
// three components in [0,255].
func Normalize(value any) (RGB, error) {
	switch v := value.(type) {
	case RGB:
		return v, nil
	case string:
		return normalizeString(v)
	case [3]int:
		return fromComponents(value, []int{v[0], v[1], v[2]})
	case []int:
		return fromComponents(value, v)
	case []float64:
		return fromFloats(value, v)
	case []any:
		comps := make([]float64, 0, len(v))
		for _, item := range v {
			f, ok := toFloat(item)
			if !ok {
				return RGB{}, &FormatError{Value: value, Message: fmt.Sprintf("non-numeric component %v", item)}
			}
			comps = append(comps, f)
		}
		return fromFloats(value, comps)
	default:
		return RGB{}, &FormatError{Value: value, Message: fmt.Sprintf("unsupported color type %T", value)}
	}
}

func normalizeString(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return RGB{}, &FormatError{Value: s, Message: "empty color value"}
	}

	if m := hexPattern.FindStringSubmatch(trimmed); m != nil {
		n, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return RGB{}, &FormatError{Value: s, Message: "invalid hex digits", Cause: err}
		}
		return RGB{uint8(n >> 16), uint8(n >> 8 & 0xFF), uint8(n & 0xFF)}, nil
	}

	// Delimited integer string, e.g. "100-100-100" or "100, 100, 100".
	parts := nonDigits.Split(trimmed, -1)
	comps := make([]int, 0, 3)
	for _, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return RGB{}, &FormatError{Value: s, Message: "invalid numeric component", Cause: err}
		}
		comps = append(comps, n)
	}
	return fromComponents(s, comps)
}

func fromComponents(original any, comps []int) (RGB, error) {
	if len(comps) != 3 {
		return RGB{}, &FormatError{Value: original, Message: fmt.Sprintf("expected 3 components, found %d", len(comps))}
	}
	var rgb RGB
	for i, n := range comps {
		if n < 0 || n > 255 {
			return RGB{}, &FormatError{Value: original, Message: fmt.Sprintf("component %d out of range [0,255]", n)}
		}
		rgb[i] = uint8(n)
	}
	return rgb, nil
}

func fromFloats(original any, comps []float64) (RGB, error) {
	ints := make([]int, 0, len(comps))
	for _, f := range comps {
		if f != math.Trunc(f) {
			return RGB{}, &FormatError{Value: original, Message: fmt.Sprintf("non-integer component %v", f)}
		}
		ints = append(ints, int(f))
	}
	return fromComponents(original, ints)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Distance returns the Euclidean distance between two colors in RGB space.
// Range is [0, ~441.67].
func Distance(a, b RGB) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Nearest returns the index of the swatch closest to c and the distance to
// it. Returns index -1 when swatches is empty.
func Nearest(c RGB, swatches []Swatch) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i, s := range swatches {
		if d := Distance(c, s.RGB); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}
