package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/brand-auditor/internal/colors"
)

var (
	// hexToken matches a 6-digit hex color mention anywhere in a line.
	hexToken = regexp.MustCompile(`#?[0-9a-fA-F]{6}\b`)
	// rgbTriple matches three delimited integers, e.g. "74, 21, 75" or
	// "74-21-75".
	rgbTriple = regexp.MustCompile(`\b\d{1,3}\s*[,/\-]\s*\d{1,3}\s*[,/\-]\s*\d{1,3}\b`)
	// headingLine matches a markdown heading or a short trailing-colon label
	// line ("Primary Palette:").
	headingLine = regexp.MustCompile(`^(#{1,6}\s+.+|[A-Z][A-Za-z &/]{2,40}:?)$`)
)

// swatchScan is the per-page result of swatch pairing.
type swatchScan struct {
	primary  []colors.Swatch
	rich     []colors.Swatch
	mentions int
}

// findSwatches pairs human-readable names with adjacent hex/RGB tokens,
// line by line. The section heading in effect decides whether a swatch lands
// in the primary or rich bucket. mentions counts every color token seen,
// named or not, so the extractor can distinguish "no colors at all" from
// "colors without names".
func findSwatches(pageText string) swatchScan {
	var scan swatchScan
	section := ""

	for _, line := range strings.Split(pageText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		token, tokenStart := firstColorToken(trimmed)
		if token == "" {
			if isHeading(trimmed) {
				section = strings.ToLower(trimmed)
			}
			continue
		}
		scan.mentions += countColorTokens(trimmed)

		rgb, err := colors.Normalize(token)
		if err != nil {
			// Malformed mention (e.g. an out-of-range triple): skip the
			// entry, keep scanning.
			warnf("skipping malformed color %q: %v", token, err)
			continue
		}

		name := swatchName(trimmed[:tokenStart])
		if name == "" {
			continue
		}

		swatch := colors.NewSwatch(name, rgb)
		if strings.Contains(section, "primary") {
			scan.primary = append(scan.primary, swatch)
		} else {
			scan.rich = append(scan.rich, swatch)
		}
	}

	return scan
}

// firstColorToken returns the first hex or RGB-triple token in the line and
// its start offset, preferring whichever appears earlier.
func firstColorToken(line string) (string, int) {
	hexLoc := hexToken.FindStringIndex(line)
	tripleLoc := rgbTriple.FindStringIndex(line)

	switch {
	case hexLoc == nil && tripleLoc == nil:
		return "", -1
	case hexLoc == nil:
		return line[tripleLoc[0]:tripleLoc[1]], tripleLoc[0]
	case tripleLoc == nil:
		return line[hexLoc[0]:hexLoc[1]], hexLoc[0]
	case hexLoc[0] <= tripleLoc[0]:
		return line[hexLoc[0]:hexLoc[1]], hexLoc[0]
	default:
		return line[tripleLoc[0]:tripleLoc[1]], tripleLoc[0]
	}
}

func countColorTokens(line string) int {
	n := len(hexToken.FindAllString(line, -1))
	// Strip hex tokens first so their digits are not re-counted as triples.
	stripped := hexToken.ReplaceAllString(line, " ")
	n += len(rgbTriple.FindAllString(stripped, -1))
	return n
}

// separatorCutset strips list markers and name/value separators around a
// candidate swatch name.
const separatorCutset = " \t:–—-(•*#.,"

// swatchName extracts a usable name from the text preceding a color token.
// Labels like "RGB" or "HEX" between the name and the value are dropped.
func swatchName(prefix string) string {
	name := strings.Trim(prefix, separatorCutset)
	for _, label := range []string{"rgb", "hex", "cmyk", "pantone"} {
		if strings.HasSuffix(strings.ToLower(name), label) {
			name = strings.Trim(name[:len(name)-len(label)], separatorCutset)
		}
	}

	if name == "" || !startsWithLetter(name) {
		return ""
	}
	if len(name) > 40 || len(strings.Fields(name)) > 4 {
		return ""
	}
	return name
}

func startsWithLetter(s string) bool {
	c := s[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isHeading(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	return headingLine.MatchString(line) && len(strings.Fields(line)) <= 6
}
