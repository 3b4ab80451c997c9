// Package audit evaluates visual assets against a brand kit, producing one
// pass/fail verdict per compliance check with a human-readable metric.
package audit

import "fmt"

// AuditInputError represents malformed asset input, such as a detected color
// in no accepted format. It fails the single check it occurred in and never
// aborts the remaining checks.
//
//nolint:revive // name keeps the error kind explicit at call sites outside this package
type AuditInputError struct {
	Message string
	Cause   error
}

func (e *AuditInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("audit input error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("audit input error: %s", e.Message)
}

func (e *AuditInputError) Unwrap() error {
	return e.Cause
}
