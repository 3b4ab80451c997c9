package colors

import "fmt"

// FormatError represents a malformed color value. Callers handle it locally:
// the offending entry is skipped with a logged warning, never silently
// dropped.
type FormatError struct {
	Value   any
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("color format error for %v: %s: %v", e.Value, e.Message, e.Cause)
	}
	return fmt.Sprintf("color format error for %v: %s", e.Value, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}
