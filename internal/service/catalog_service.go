package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielGPGT/pandora-backend/internal/domain"
	"github.com/danielGPGT/pandora-backend/internal/repository"
	"github.com/danielGPGT/pandora-backend/pkg/middleware"
	"github.com/danielGPGT/pandora-backend/pkg/sanitize"
	"github.com/danielGPGT/pandora-backend/pkg/slug"
)

// maxDuplicateAttempts bounds the duplication retry loop. Two concurrent
// duplications of records sharing a base name can compute the same "next
// available" name between their read and write; the loser re-reads and
// retries.
const maxDuplicateAttempts = 3

// duplicateSuffix is appended to duplicated names ("Alpha (Copy)") and
// slugs ("alpha-copy").
const duplicateSuffix = "Copy"

// Patch is the part of a partial-update request the catalog core inspects
// for collision checks. Update DTOs implement it.
type Patch interface {
	PatchName() *string
	PatchSlug() *string
}

// AuditSink records mutation history. Implementations must never fail the
// calling mutation.
type AuditSink interface {
	Record(ctx context.Context, entry *domain.AuditEntry)
}

// EntitySpec describes the entity-specific behavior the catalog core is
// parameterized by: sanitization passes, cloning, identity reissue and the
// partial-update application. One CatalogService instantiated per entity
// kind replaces the near-identical per-entity orchestration code.
type EntitySpec[T domain.Entity, P Patch] struct {
	// EntityType names the kind in errors and audit entries.
	EntityType string
	// Sanitize applies the full per-field sanitization map in place.
	Sanitize func(entity T)
	// SanitizeCopy sanitizes the fields carried over by duplication.
	// Name and slug are skipped; they are resolved separately.
	SanitizeCopy func(entity T)
	// Clone returns a deep copy, used for duplication drafts and audit
	// snapshots.
	Clone func(entity T) T
	// Reissue assigns a fresh identity: id, tenant binding, timestamps,
	// and clears any soft-delete marker.
	Reissue func(entity T, id, tenantID string, now time.Time)
	// Apply sanitizes and assigns the provided fields of a partial
	// update onto the entity.
	Apply func(entity T, patch P)
	// HasActive reports whether the entity kind carries an active flag.
	HasActive bool
}

// CatalogService orchestrates create/update/soft-delete/duplicate for one
// entity kind: sanitize inputs, compute and validate the slug, resolve
// name/slug collisions against the tenant's active records, persist, and
// record audit history.
type CatalogService[T domain.Entity, P Patch] struct {
	spec  EntitySpec[T, P]
	store repository.EntityStore[T]
	audit AuditSink
}

// NewCatalogService creates the orchestration core for one entity kind.
func NewCatalogService[T domain.Entity, P Patch](spec EntitySpec[T, P], store repository.EntityStore[T], audit AuditSink) *CatalogService[T, P] {
	return &CatalogService[T, P]{
		spec:  spec,
		store: store,
		audit: audit,
	}
}

// List retrieves all non-deleted entities for a tenant.
func (s *CatalogService[T, P]) List(ctx context.Context, tenantID string) ([]T, error) {
	return s.store.List(ctx, tenantID)
}

// Get retrieves a non-deleted entity by ID.
func (s *CatalogService[T, P]) Get(ctx context.Context, id string) (T, error) {
	return s.store.Get(ctx, id)
}

// Create persists a new entity for the tenant. A name or slug that collides
// with an existing record is silently renamed to a free variant; creation
// never fails on a pre-existing exact match.
func (s *CatalogService[T, P]) Create(ctx context.Context, tenantID, userID string, entity T) (T, error) {
	var zero T

	s.spec.Sanitize(entity)

	slugValue := entity.GetSlug()
	if slugValue == "" {
		slugValue = slug.Make(entity.GetName())
	}
	if !slug.IsValid(slugValue) {
		return zero, &domain.InvalidSlugError{Slug: slugValue}
	}

	existing, err := s.store.ListNameSlugs(ctx, tenantID, "")
	if err != nil {
		return zero, err
	}
	names, slugs := splitPairs(existing)

	if contains(names, entity.GetName()) {
		entity.SetName(slug.UniqueName(entity.GetName(), names, duplicateSuffix))
	}
	if contains(slugs, slugValue) {
		slugValue = slug.Unique(slugValue, slugs)
	}
	entity.SetSlug(slugValue)

	s.spec.Reissue(entity, uuid.New().String(), tenantID, time.Now())

	created, err := s.store.Insert(ctx, entity)
	if err != nil {
		return zero, err
	}

	s.audit.Record(ctx, &domain.AuditEntry{
		TenantID:   tenantID,
		UserID:     userID,
		EntityType: s.spec.EntityType,
		EntityID:   created.GetID(),
		Action:     domain.AuditActionCreated,
		NewValues:  snapshot(created),
	})
	middleware.RecordEntityMutation(s.spec.EntityType, string(domain.AuditActionCreated))

	return created, nil
}

// Update applies a partial update. Unlike create, an update that collides
// with a different record fails instead of silently renaming.
func (s *CatalogService[T, P]) Update(ctx context.Context, userID, id string, patch P) (T, error) {
	var zero T

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	old := snapshot(current)
	tenantID := current.GetTenantID()

	s.spec.Apply(current, patch)

	existing, err := s.store.ListNameSlugs(ctx, tenantID, id)
	if err != nil {
		return zero, err
	}
	names, slugs := splitPairs(existing)

	if patch.PatchName() != nil && contains(names, current.GetName()) {
		return zero, &domain.ConflictError{EntityType: s.spec.EntityType, Field: "name", Value: current.GetName()}
	}
	if patch.PatchSlug() != nil {
		slugValue := current.GetSlug()
		if !slug.IsValid(slugValue) {
			return zero, &domain.InvalidSlugError{Slug: slugValue}
		}
		if contains(slugs, slugValue) {
			return zero, &domain.ConflictError{EntityType: s.spec.EntityType, Field: "slug", Value: slugValue}
		}
	}

	updated, err := s.store.Update(ctx, current)
	if err != nil {
		return zero, err
	}

	s.audit.Record(ctx, &domain.AuditEntry{
		TenantID:   tenantID,
		UserID:     userID,
		EntityType: s.spec.EntityType,
		EntityID:   id,
		Action:     domain.AuditActionUpdated,
		OldValues:  old,
		NewValues:  snapshot(updated),
	})
	middleware.RecordEntityMutation(s.spec.EntityType, string(domain.AuditActionUpdated))

	return updated, nil
}

// Delete soft-deletes one entity. The row stays stored; its name and slug
// become reusable immediately.
func (s *CatalogService[T, P]) Delete(ctx context.Context, tenantID, userID, id string) error {
	if err := s.store.SoftDelete(ctx, []string{id}); err != nil {
		return err
	}

	s.audit.Record(ctx, &domain.AuditEntry{
		TenantID:   tenantID,
		UserID:     userID,
		EntityType: s.spec.EntityType,
		EntityID:   id,
		Action:     domain.AuditActionDeleted,
	})
	middleware.RecordEntityMutation(s.spec.EntityType, string(domain.AuditActionDeleted))
	return nil
}

// BulkDelete soft-deletes all given IDs in one statement, then records one
// audit entry per ID in order. A failed write aborts before any audit
// entries are recorded.
func (s *CatalogService[T, P]) BulkDelete(ctx context.Context, tenantID, userID string, ids []string) error {
	if err := s.store.SoftDelete(ctx, ids); err != nil {
		return err
	}

	for _, id := range ids {
		s.audit.Record(ctx, &domain.AuditEntry{
			TenantID:   tenantID,
			UserID:     userID,
			EntityType: s.spec.EntityType,
			EntityID:   id,
			Action:     domain.AuditActionDeleted,
		})
		middleware.RecordEntityMutation(s.spec.EntityType, string(domain.AuditActionDeleted))
	}
	return nil
}

// BulkSetActive flips the active flag for all given IDs in one statement,
// then records one audit entry per ID carrying the partial snapshot.
func (s *CatalogService[T, P]) BulkSetActive(ctx context.Context, tenantID, userID string, ids []string, active bool) error {
	if !s.spec.HasActive {
		return fmt.Errorf("%s does not support bulk status updates", s.spec.EntityType)
	}
	if err := s.store.SetActive(ctx, ids, active); err != nil {
		return err
	}

	for _, id := range ids {
		s.audit.Record(ctx, &domain.AuditEntry{
			TenantID:   tenantID,
			UserID:     userID,
			EntityType: s.spec.EntityType,
			EntityID:   id,
			Action:     domain.AuditActionUpdated,
			NewValues:  map[string]any{"is_active": active},
		})
		middleware.RecordEntityMutation(s.spec.EntityType, string(domain.AuditActionUpdated))
	}
	return nil
}

// Duplicate copies an existing record under a "(Copy)" name and "-copy"
// slug, resolving further collisions like create does. Losing the insert
// race to a concurrent duplication triggers a bounded retry with a fresh
// read of the tenant's names.
func (s *CatalogService[T, P]) Duplicate(ctx context.Context, tenantID, userID, id string) (T, error) {
	var zero T

	// The source may be soft-deleted; duplicating it resurrects its data
	// under a new identity. It must belong to the caller's tenant.
	original, err := s.store.GetIncludingDeleted(ctx, id)
	if err != nil {
		return zero, err
	}
	if original.GetTenantID() != tenantID {
		return zero, domain.ErrNotFound
	}

	existing, err := s.store.ListNameSlugs(ctx, tenantID, "")
	if err != nil {
		return zero, err
	}
	names, slugs := splitPairs(existing)

	uniqueName := slug.UniqueName(original.GetName(), names, duplicateSuffix)
	baseSlug := slug.Make(original.GetSlug())
	if baseSlug == "" {
		baseSlug = slug.Make(original.GetName())
	}
	uniqueSlug := slug.Unique(baseSlug+"-copy", slugs)

	for attempt := 1; attempt <= maxDuplicateAttempts; attempt++ {
		draft := s.spec.Clone(original)
		s.spec.SanitizeCopy(draft)
		draft.SetName(sanitize.Text(uniqueName))
		draft.SetSlug(uniqueSlug)
		s.spec.Reissue(draft, uuid.New().String(), tenantID, time.Now())

		created, err := s.store.Insert(ctx, draft)
		if err == nil {
			s.audit.Record(ctx, &domain.AuditEntry{
				TenantID:   tenantID,
				UserID:     userID,
				EntityType: s.spec.EntityType,
				EntityID:   created.GetID(),
				Action:     domain.AuditActionDuplicated,
				NewValues:  map[string]any{"original_id": id},
			})
			middleware.RecordEntityMutation(s.spec.EntityType, string(domain.AuditActionDuplicated))
			return created, nil
		}

		var conflict *domain.ConflictError
		if !errors.As(err, &conflict) {
			return zero, err
		}
		if attempt < maxDuplicateAttempts {
			middleware.RecordDuplicateRetry()
			refreshed, err := s.store.ListNameSlugs(ctx, tenantID, "")
			if err != nil {
				return zero, err
			}
			names, _ = splitPairs(refreshed)
			uniqueName = slug.UniqueName(original.GetName(), names, duplicateSuffix)
		}
	}

	return zero, &domain.DuplicationError{EntityType: s.spec.EntityType, Attempts: maxDuplicateAttempts}
}
