package document

import "fmt"

// ReadError represents a failure to open or read a document source.
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document read error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("document read error for %s: %s", e.Path, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
