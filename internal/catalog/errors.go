// Package catalog provides loading and read-only queries over the clothing item catalog.
package catalog

import "fmt"

// LoadError represents an error during catalog file I/O or CSV parsing.
// A missing catalog file is not a LoadError; it yields an empty catalog.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
