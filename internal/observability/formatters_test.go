package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/brand-auditor/internal/colors"
	"github.com/jonathan/brand-auditor/internal/types"
)

func TestPrintGuidelines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	guidelines := &types.ExtractedGuidelines{
		PrimaryColors: []colors.Swatch{
			colors.NewSwatch("Core Aubergine", colors.RGB{74, 21, 75}),
			colors.NewSwatch("White", colors.RGB{255, 255, 255}),
		},
		RichColors: []colors.Swatch{
			colors.NewSwatch("Core Aubergine", colors.RGB{74, 21, 75}),
			colors.NewSwatch("White", colors.RGB{255, 255, 255}),
			colors.NewSwatch("Horchata", colors.RGB{243, 238, 227}),
		},
		VoiceAttributes:   []string{"bold", "playful"},
		ForbiddenKeywords: []string{"synergy"},
	}

	p.PrintGuidelines(guidelines)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED GUIDELINES")
	assert.Contains(t, output, "#4A154B")
	assert.Contains(t, output, "Core Aubergine")
	assert.Contains(t, output, "3 swatches")
	assert.Contains(t, output, "bold, playful")
	assert.Contains(t, output, "synergy")
}

func TestPrintGuidelines_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGuidelines(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBrandKit(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	kit := &types.BrandKit{
		BrandName:     "Acme",
		PrimaryColors: []string{"#4A154B"},
		RichColors: []colors.Swatch{
			colors.NewSwatch("Core Aubergine", colors.RGB{74, 21, 75}),
		},
		BrandVoiceAttributes: []string{"bold", "human"},
		ForbiddenKeywords:    []string{"synergy", "rockstar"},
		FrequentKeywords:     []string{"simple", "pleasant"},
	}

	p.PrintBrandKit(kit)
	output := buf.String()

	assert.Contains(t, output, "BRAND KIT")
	assert.Contains(t, output, "Acme")
	assert.Contains(t, output, "#4A154B")
	assert.Contains(t, output, "bold, human")
	assert.Contains(t, output, "synergy, rockstar")
	assert.Contains(t, output, "simple, pleasant")
}

func TestPrintAuditResults_AllPassed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.AuditResult{
		{Type: types.CheckPalette, Status: types.StatusPass, Metric: "All good"},
		{Type: types.CheckKeywords, Status: types.StatusPass, Metric: "No copy text to check"},
	}

	p.PrintAuditResults("hero.png", results)
	output := buf.String()

	assert.Contains(t, output, "ALL CHECKS PASSED")
	assert.Contains(t, output, "hero.png")
	assert.NotContains(t, output, "⚠")
}

func TestPrintAuditResults_WithFailures(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.AuditResult{
		{Type: types.CheckPalette, Status: types.StatusFail, Metric: "Color #00FF00 is off-palette"},
		{Type: types.CheckKeywords, Status: types.StatusPass, Metric: "Copy clean"},
	}

	p.PrintAuditResults("banner.png", results)
	output := buf.String()

	assert.Contains(t, output, "AUDIT: banner.png")
	assert.Contains(t, output, "1 of 2 checks failed")
	assert.Contains(t, output, "⚠ PALETTE")
	assert.Contains(t, output, "✓ KEYWORDS")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := "this line is definitely much longer than the box width allows so it must be truncated"
	p.printBox("TITLE", long)
	output := buf.String()

	assert.Contains(t, output, "TITLE")
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, "must be truncated")
}
