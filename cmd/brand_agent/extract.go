// Package main implements the brand_agent CLI tool for brand compliance auditing.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/brand-auditor/internal/document"
	"github.com/jonathan/brand-auditor/internal/extraction"
	"github.com/jonathan/brand-auditor/internal/fetch"
	"github.com/jonathan/brand-auditor/internal/observability"
	"github.com/jonathan/brand-auditor/internal/schemas"
	"github.com/jonathan/brand-auditor/internal/types"
	"github.com/jonathan/brand-auditor/internal/voice"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured rules from a brand guideline document",
	Long:  "Parses a guideline document (file, page directory, or URL) into structured color swatches, usage rules, typography rules, and voice attributes.",
	RunE:  runExtract,
}

var (
	extractInputPath  string
	extractURL        string
	extractOutputFile string
	extractEnrich     bool
	extractAPIKey     string
	extractUseBrowser bool
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputPath, "in", "i", "", "Path to guideline document file or page directory")
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL of a guideline page to fetch")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output guidelines JSON file (required)")
	extractCmd.Flags().BoolVar(&extractEnrich, "enrich", false, "Enrich voice attributes with the Gemini API")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Use a headless browser for script-rendered brand portals")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print extracted rules")

	if err := extractCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractInputPath == "" && extractURL == "" {
		return fmt.Errorf("either --in or --url is required")
	}
	if extractInputPath != "" && extractURL != "" {
		return fmt.Errorf("--in and --url are mutually exclusive")
	}

	ctx := context.Background()

	var doc *document.Document
	var sourceURLs []string
	if extractURL != "" {
		text, err := fetchGuidelineText(ctx, extractURL, extractUseBrowser, extractVerbose)
		if err != nil {
			return err
		}
		doc = &document.Document{
			Path:  extractURL,
			Pages: []document.Page{{Index: 0, Path: extractURL, Text: text}},
		}
		sourceURLs = []string{extractURL}
	} else {
		var err error
		doc, err = document.Open(extractInputPath)
		if err != nil {
			return fmt.Errorf("failed to open guideline document: %w", err)
		}
	}

	guidelines, err := extraction.Extract(doc)
	if err != nil {
		var extractErr *extraction.ExtractionError
		if !errors.As(err, &extractErr) {
			return fmt.Errorf("failed to extract guidelines: %w", err)
		}
		// Extraction failure is soft: continue with an empty ruleset so
		// enrichment can still recover voice signals.
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v; continuing with empty ruleset\n", err)
		guidelines = &types.ExtractedGuidelines{}
	}

	if extractEnrich {
		guidelines, err = enrichGuidelines(ctx, guidelines, doc, sourceURLs)
		if err != nil {
			return err
		}
	}

	if err := writeJSONFile(extractOutputFile, guidelines); err != nil {
		return err
	}

	if err := validateAgainstSchema("schemas/guidelines.schema.json", extractOutputFile); err != nil {
		return err
	}

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintGuidelines(guidelines)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Extracted %d colors from %d pages\n", guidelines.ColorCount(), doc.PageCount())
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)

	return nil
}

// fetchGuidelineText retrieves a guideline page, falling back to a headless
// browser when the static HTML yields too little text.
func fetchGuidelineText(ctx context.Context, url string, useBrowser, verbose bool) (string, error) {
	fetcher, closeDB := cachedFetcherFromEnv(ctx)
	defer closeDB()

	result, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch guideline page: %w", err)
	}

	text := result.Text
	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			_, _ = fmt.Fprintf(os.Stderr, "Static fetch too thin (%d chars), rendering with browser\n", len(text))
		}
		html, err := fetch.BrowserSimple(ctx, url, verbose)
		if err != nil {
			return "", fmt.Errorf("browser fetch failed: %w", err)
		}
		platform := fetch.DetectPlatform(url)
		rendered, err := fetch.ExtractMainText(html, fetch.PlatformContentSelectors(platform), fetch.PlatformNoiseSelectors(platform)...)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from rendered page: %w", err)
		}
		text = rendered
	}

	return text, nil
}

// enrichGuidelines merges LLM-derived voice signals into the extracted rules.
func enrichGuidelines(ctx context.Context, guidelines *types.ExtractedGuidelines, doc *document.Document, sourceURLs []string) (*types.ExtractedGuidelines, error) {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key required for --enrich: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	enrichment, err := voice.Enrich(ctx, doc.FullText(), sourceURLs, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich voice attributes: %w", err)
	}

	return voice.Apply(guidelines, enrichment), nil
}

// writeJSONFile marshals v with indentation and writes it, creating the
// output directory if needed.
func writeJSONFile(path string, v any) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateAgainstSchema validates an output file when its schema can be
// located. A real validation failure is an error; schema loading problems are
// downgraded to warnings so a missing schemas/ directory never blocks the CLI.
func validateAgainstSchema(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}
	return nil
}
