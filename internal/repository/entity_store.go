package repository

import (
	"context"

	"github.com/danielGPGT/pandora-backend/internal/domain"
)

// NameSlug is the projection used for tenant-scoped collision checks.
type NameSlug struct {
	Name string
	Slug string
}

// EntityStore defines tenant-scoped persistence for a catalog entity kind.
// Uniqueness of (tenant_id, name) and (tenant_id, slug) among non-deleted
// rows is enforced by the database; violations surface as
// *domain.ConflictError.
type EntityStore[T domain.Entity] interface {
	// List retrieves all non-deleted entities for a tenant in the entity
	// kind's display order.
	List(ctx context.Context, tenantID string) ([]T, error)
	// Get retrieves a non-deleted entity by ID.
	Get(ctx context.Context, id string) (T, error)
	// GetIncludingDeleted retrieves an entity by ID regardless of its
	// soft-delete state. Used as the source lookup for duplication.
	GetIncludingDeleted(ctx context.Context, id string) (T, error)
	// ListNameSlugs retrieves the (name, slug) pairs of all non-deleted
	// entities for a tenant, optionally excluding one ID.
	ListNameSlugs(ctx context.Context, tenantID, excludeID string) ([]NameSlug, error)
	// Insert persists a new entity and returns the stored row.
	Insert(ctx context.Context, entity T) (T, error)
	// Update persists all mutable columns of an entity and refreshes
	// updated_at, returning the stored row.
	Update(ctx context.Context, entity T) (T, error)
	// SoftDelete marks the given IDs as deleted in a single statement.
	SoftDelete(ctx context.Context, ids []string) error
	// SetActive flips the active flag for the given IDs in a single
	// statement. Only valid for entity kinds with an active column.
	SetActive(ctx context.Context, ids []string, active bool) error
}

// AuditRepository is the append-only sink for audit entries.
type AuditRepository interface {
	// Insert appends one audit entry.
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// ListByEntity retrieves the newest entries for one record,
	// tenant-scoped, newest first.
	ListByEntity(ctx context.Context, tenantID, entityType, entityID string, limit int) ([]*domain.AuditEntry, error)
}
