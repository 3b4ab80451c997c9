// Package voice provides LLM-backed enrichment of a brand's verbal identity.
// Regex extraction only finds what the guidelines state explicitly; this layer
// mines tone and vocabulary that is implied by the surrounding prose.
package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/brand-auditor/internal/llm"
	"github.com/jonathan/brand-auditor/internal/prompts"
	"github.com/jonathan/brand-auditor/internal/types"
)

// Enrichment holds the voice characteristics mined from corpus text.
type Enrichment struct {
	Tone              string   `json:"tone"`
	VoiceAttributes   []string `json:"voice_attributes"`
	ForbiddenKeywords []string `json:"forbidden_keywords"`
}

// Enrich mines brand voice characteristics from corpus text using the LLM.
// sourceURLs are included in the prompt for context only.
func Enrich(ctx context.Context, corpusText string, sourceURLs []string, apiKey string) (*Enrichment, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}

	config := llm.DefaultConfig()
	client, err := llm.NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	defer func() { _ = client.Close() }()

	prompt := buildEnrichmentPrompt(corpusText, sourceURLs)

	// Voice analysis requires nuance; use the advanced tier
	responseText, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	enrichment, err := parseEnrichment(responseText)
	if err != nil {
		return nil, err
	}

	if err := validateEnrichment(enrichment); err != nil {
		return nil, err
	}

	return enrichment, nil
}

// Apply merges an enrichment into a copy of the extracted guidelines. The
// extracted values stay first and authoritative; enrichment only appends what
// the regex pass missed. The input guidelines are never mutated.
func Apply(guidelines *types.ExtractedGuidelines, enrichment *Enrichment) *types.ExtractedGuidelines {
	if guidelines == nil {
		return nil
	}

	merged := *guidelines
	merged.VoiceAttributes = mergeLists(guidelines.VoiceAttributes, enrichment.VoiceAttributes)
	merged.ForbiddenKeywords = mergeLists(guidelines.ForbiddenKeywords, lowercaseAll(enrichment.ForbiddenKeywords))
	return &merged
}

// buildEnrichmentPrompt constructs the prompt for structured voice extraction
func buildEnrichmentPrompt(corpusText string, sourceURLs []string) string {
	var sourcesSection string
	if len(sourceURLs) > 0 {
		var sb strings.Builder
		sb.WriteString("Sources (for context):\n")
		for _, url := range sourceURLs {
			sb.WriteString(fmt.Sprintf("- %s\n", url))
		}
		sb.WriteString("\n")
		sourcesSection = sb.String()
	}

	template := prompts.MustGet("voice.json", "enrich-brand-voice")
	return prompts.Format(template, map[string]string{
		"Sources":    sourcesSection,
		"CorpusText": corpusText,
	})
}

// parseEnrichment parses the JSON response into an Enrichment
func parseEnrichment(jsonText string) (*Enrichment, error) {
	var enrichment Enrichment
	if err := json.Unmarshal([]byte(jsonText), &enrichment); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}
	return &enrichment, nil
}

// validateEnrichment checks the response carries at least one usable signal
func validateEnrichment(e *Enrichment) error {
	if e.Tone == "" && len(e.VoiceAttributes) == 0 && len(e.ForbiddenKeywords) == 0 {
		return &ValidationError{
			Message: "response carried no voice characteristics",
		}
	}

	// Attributes longer than three words are summaries, not attributes
	for _, attr := range e.VoiceAttributes {
		if len(strings.Fields(attr)) > 3 {
			return &ValidationError{
				Field:   "voice_attributes",
				Message: fmt.Sprintf("attribute %q is too long", attr),
			}
		}
	}
	return nil
}

// mergeLists appends additions that are not already present, case-insensitively
func mergeLists(base, additions []string) []string {
	merged := make([]string, 0, len(base)+len(additions))
	seen := make(map[string]bool, len(base)+len(additions))
	for _, v := range base {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, v)
	}
	for _, v := range additions {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, strings.TrimSpace(v))
	}
	return merged
}

func lowercaseAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
