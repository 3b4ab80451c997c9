package kit

import "fmt"

// SynthesisError represents a brand kit that failed validation, typically
// because neither the guidelines nor the corpus yielded any colors.
type SynthesisError struct {
	Message string
	Cause   error
}

func (e *SynthesisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("synthesis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("synthesis error: %s", e.Message)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}
