package document

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// guidelineSelectors are tried in order to find the main content of an HTML
// brand-guideline page before falling back to the whole body.
var guidelineSelectors = []string{
	"main",
	"article",
	".guidelines",
	".brand-guidelines",
	".style-guide",
	".content",
	"#content",
}

// htmlToText reduces an HTML page to its main text content, dropping
// navigation and script noise.
func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()

	var main *goquery.Selection
	for _, selector := range guidelineSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Keep line structure: block elements become separate lines so the
	// extractor's line-oriented swatch pairing still works.
	var sb strings.Builder
	main.Find("h1, h2, h3, h4, p, li, td, dt, dd, figcaption").Each(func(_ int, s *goquery.Selection) {
		line := strings.TrimSpace(s.Text())
		if line != "" {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = main.Text()
	}
	return text, nil
}
