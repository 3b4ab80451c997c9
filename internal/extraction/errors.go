// Package extraction parses brand-guideline documents into structured rule
// records: named color swatches, color-usage rules, voice attributes, and
// forbidden keyword lists.
package extraction

import "fmt"

// ExtractionError represents an unreadable or empty guideline document. It is
// a soft failure: callers may proceed with an empty ruleset and a fallback
// corpus rather than abort the whole pipeline.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
