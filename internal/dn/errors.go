package dn

import (
	"errors"
	"fmt"
)

// ErrMalformedDN is returned when a DN string cannot be decomposed.
var ErrMalformedDN = errors.New("dn: malformed DN")

// SyntaxError provides detailed information about a decomposition failure.
type SyntaxError struct {
	DN      string // The DN being decomposed
	Offset  int    // Byte offset where the error occurred
	Message string // Human-readable error description
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dn: malformed DN %q at offset %d: %s", e.DN, e.Offset, e.Message)
}

// Unwrap returns ErrMalformedDN so callers can use errors.Is.
func (e *SyntaxError) Unwrap() error {
	return ErrMalformedDN
}

func newSyntaxError(dn string, offset int, message string) *SyntaxError {
	return &SyntaxError{
		DN:      dn,
		Offset:  offset,
		Message: message,
	}
}
