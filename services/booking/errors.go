package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSlotUnavailable means the slot filled up between browsing and submitting.
	ErrSlotUnavailable = errors.New("slot no longer available")
	// ErrBookingSystemInactive is returned when no active booking settings exist.
	ErrBookingSystemInactive = errors.New("booking system is not active")
	// ErrCollaboratorUnavailable wraps storage failures surfaced to callers.
	ErrCollaboratorUnavailable = errors.New("booking store unavailable")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrSettingsNotFound        = errors.New("booking settings not found")
)

// ValidationError maps each rejected field to a readable reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, reason string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = reason
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrCollaboratorUnavailable, err)
}
