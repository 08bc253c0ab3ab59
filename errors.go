package tradebook

import (
	"fmt"
	"strings"
)

// FieldError pinpoints a single validation failure inside a Store document.
// Path uses the json naming, e.g. "actions[2].deviationReason".
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationError reports every rule the candidate store violates.
// It is returned whole so the caller can surface all problems at once.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "invalid store"
	}
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.String()
	}
	return fmt.Sprintf("invalid store: %s", strings.Join(msgs, "; "))
}

// ParseError means the persisted or imported bytes are not a well formed
// document. At load time it is treated as corruption.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string { return fmt.Sprintf("cannot parse store document: %v", e.Cause) }
func (e *ParseError) Unwrap() error { return e.Cause }

// CorruptionRecovered signals that Load found an unreadable or invalid slot
// and replaced it with a fresh default store. It is not fatal: the returned
// store is usable, but the caller must surface the recovery to the user.
type CorruptionRecovered struct {
	Cause error
}

func (e *CorruptionRecovered) Error() string {
	return fmt.Sprintf("stored data was corrupt and has been reset: %v", e.Cause)
}
func (e *CorruptionRecovered) Unwrap() error { return e.Cause }

// CapacityError means the backing storage refused a write. The in-memory
// candidate is discarded and the previously persisted store stays authoritative.
type CapacityError struct {
	Cause error
}

func (e *CapacityError) Error() string { return fmt.Sprintf("cannot write store: %v", e.Cause) }
func (e *CapacityError) Unwrap() error { return e.Cause }

// DomainError blocks an operation at the boundary, before any mutation
// reaches persistence (e.g. a deviation without its justification).
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func domainErrorf(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}
