package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist or is soft-deleted.
var ErrNotFound = errors.New("record not found")

// InvalidSlugError is returned when a caller-supplied slug does not match
// the required format.
type InvalidSlugError struct {
	Slug string
}

func (e *InvalidSlugError) Error() string {
	return fmt.Sprintf("invalid slug %q: slug must be lowercase alphanumeric with hyphens", e.Slug)
}

// ConflictError is returned when a name or slug collides with another
// non-deleted record in the same tenant. Field is "name" or "slug" so the
// caller can render a field-specific message.
type ConflictError struct {
	EntityType string
	Field      string
	Value      string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("a %s with this name or slug already exists", e.EntityType)
	}
	if e.Value != "" {
		return fmt.Sprintf("a %s with the %s %q already exists", e.EntityType, e.Field, e.Value)
	}
	return fmt.Sprintf("a %s with this %s already exists", e.EntityType, e.Field)
}

// OnName reports whether the collision was on the name column.
func (e *ConflictError) OnName() bool { return e.Field == "name" }

// OnSlug reports whether the collision was on the slug column.
func (e *ConflictError) OnSlug() bool { return e.Field == "slug" }

// DuplicationError is returned when duplicating a record kept colliding
// after the bounded retries were exhausted.
type DuplicationError struct {
	EntityType string
	Attempts   int
}

func (e *DuplicationError) Error() string {
	return fmt.Sprintf("failed to duplicate %s after %d attempts", e.EntityType, e.Attempts)
}
