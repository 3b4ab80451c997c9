// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/brand-auditor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGuidelines outputs a human-readable summary of extracted guidelines.
func (p *Printer) PrintGuidelines(guidelines *types.ExtractedGuidelines) {
	if guidelines == nil {
		return
	}

	var sb strings.Builder

	if len(guidelines.PrimaryColors) > 0 {
		sb.WriteString("Primary Colors:\n")
		count := min(len(guidelines.PrimaryColors), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := guidelines.PrimaryColors[i]
			sb.WriteString(fmt.Sprintf("  • %s  %s\n", s.Hex, s.Name))
		}
		if len(guidelines.PrimaryColors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(guidelines.PrimaryColors)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(guidelines.RichColors) > 0 {
		sb.WriteString(fmt.Sprintf("Extended palette: %d swatches\n", len(guidelines.RichColors)))
	}
	if len(guidelines.ColorUsageRules) > 0 {
		sb.WriteString(fmt.Sprintf("Usage rules:      %d\n", len(guidelines.ColorUsageRules)))
	}
	if len(guidelines.TypographyRules) > 0 {
		sb.WriteString(fmt.Sprintf("Typography rules: %d\n", len(guidelines.TypographyRules)))
	}

	if len(guidelines.VoiceAttributes) > 0 {
		sb.WriteString(fmt.Sprintf("\nVoice: %s\n", joinTruncated(guidelines.VoiceAttributes, 45)))
	}
	if len(guidelines.ForbiddenKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Never say: %s\n", joinTruncated(guidelines.ForbiddenKeywords, 40)))
	}

	p.printBox("EXTRACTED GUIDELINES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBrandKit outputs the synthesized brand kit.
func (p *Printer) PrintBrandKit(kit *types.BrandKit) {
	if kit == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Brand:  %s\n\n", kit.BrandName))

	if len(kit.RichColors) > 0 {
		sb.WriteString("Palette:\n")
		count := min(len(kit.RichColors), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := kit.RichColors[i]
			sb.WriteString(fmt.Sprintf("  • %s  %s\n", s.Hex, s.Name))
		}
		if len(kit.RichColors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kit.RichColors)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(kit.BrandVoiceAttributes) > 0 {
		sb.WriteString(fmt.Sprintf("Voice:     %s\n", joinTruncated(kit.BrandVoiceAttributes, 40)))
	}
	if len(kit.ForbiddenKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Never say: %s\n", joinTruncated(kit.ForbiddenKeywords, 40)))
	}
	if len(kit.FrequentKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Frequent:  %s\n", joinTruncated(kit.FrequentKeywords, 40)))
	}

	p.printBox("BRAND KIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAuditResults outputs the audit verdicts for one asset.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAuditResults(assetName string, results []types.AuditResult) {
	failures := 0
	for _, r := range results {
		if r.Status == types.StatusFail {
			failures++
		}
	}

	if failures == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ %s: ALL CHECKS PASSED", assetName))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d checks failed:\n\n", failures, len(results)))

	for i, r := range results {
		marker := "✓"
		if r.Status == types.StatusFail {
			marker = "⚠"
		} else if r.Status == types.StatusWarn {
			marker = "?"
		}
		metric := r.Metric
		if len(metric) > 45 {
			metric = metric[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, r.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", metric))
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("AUDIT: %s", assetName), sb.String())
}

// joinTruncated joins values with commas, truncating the result for box display.
func joinTruncated(values []string, max int) string {
	joined := strings.Join(values, ", ")
	if len(joined) > max {
		joined = joined[:max-3] + "..."
	}
	return joined
}
