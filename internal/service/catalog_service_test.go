package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielGPGT/pandora-backend/internal/domain"
	"github.com/danielGPGT/pandora-backend/internal/dto"
	"github.com/danielGPGT/pandora-backend/internal/repository"
)

// fakeSportStore is an in-memory EntityStore that mirrors the database's
// partial unique indexes: (tenant_id, name) and (tenant_id, slug) among
// non-deleted rows.
type fakeSportStore struct {
	items      []*domain.Sport
	insertErrs []error // consumed before the uniqueness check, one per Insert
}

func (f *fakeSportStore) List(ctx context.Context, tenantID string) ([]*domain.Sport, error) {
	var out []*domain.Sport
	for _, s := range f.items {
		if s.TenantID == tenantID && s.DeletedAt == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSportStore) Get(ctx context.Context, id string) (*domain.Sport, error) {
	for _, s := range f.items {
		if s.ID == id && s.DeletedAt == nil {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSportStore) GetIncludingDeleted(ctx context.Context, id string) (*domain.Sport, error) {
	for _, s := range f.items {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSportStore) ListNameSlugs(ctx context.Context, tenantID, excludeID string) ([]repository.NameSlug, error) {
	var out []repository.NameSlug
	for _, s := range f.items {
		if s.TenantID == tenantID && s.DeletedAt == nil && s.ID != excludeID {
			out = append(out, repository.NameSlug{Name: s.Name, Slug: s.Slug})
		}
	}
	return out, nil
}

func (f *fakeSportStore) Insert(ctx context.Context, entity *domain.Sport) (*domain.Sport, error) {
	if len(f.insertErrs) > 0 {
		err := f.insertErrs[0]
		f.insertErrs = f.insertErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	for _, s := range f.items {
		if s.TenantID != entity.TenantID || s.DeletedAt != nil {
			continue
		}
		if s.Name == entity.Name {
			return nil, &domain.ConflictError{EntityType: "sport", Field: "name", Value: entity.Name}
		}
		if s.Slug == entity.Slug {
			return nil, &domain.ConflictError{EntityType: "sport", Field: "slug", Value: entity.Slug}
		}
	}
	clone := *entity
	f.items = append(f.items, &clone)
	return entity, nil
}

func (f *fakeSportStore) Update(ctx context.Context, entity *domain.Sport) (*domain.Sport, error) {
	for i, s := range f.items {
		if s.ID == entity.ID && s.DeletedAt == nil {
			clone := *entity
			clone.UpdatedAt = time.Now()
			f.items[i] = &clone
			return entity, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSportStore) SoftDelete(ctx context.Context, ids []string) error {
	now := time.Now()
	for _, id := range ids {
		for _, s := range f.items {
			if s.ID == id && s.DeletedAt == nil {
				deleted := now
				s.DeletedAt = &deleted
			}
		}
	}
	return nil
}

func (f *fakeSportStore) SetActive(ctx context.Context, ids []string, active bool) error {
	for _, id := range ids {
		for _, s := range f.items {
			if s.ID == id && s.DeletedAt == nil {
				s.IsActive = active
			}
		}
	}
	return nil
}

// fakeAuditSink captures recorded entries in order.
type fakeAuditSink struct {
	entries []*domain.AuditEntry
}

func (f *fakeAuditSink) Record(ctx context.Context, entry *domain.AuditEntry) {
	f.entries = append(f.entries, entry)
}

func (f *fakeAuditSink) last() *domain.AuditEntry {
	if len(f.entries) == 0 {
		return nil
	}
	return f.entries[len(f.entries)-1]
}

func newSportFixture(store repository.EntityStore[*domain.Sport], audit AuditSink) *CatalogService[*domain.Sport, *dto.UpdateSportRequest] {
	return NewCatalogService(sportSpec(), store, audit)
}

func seedSport(store *fakeSportStore, id, tenantID, name, slugValue string) *domain.Sport {
	s := &domain.Sport{
		ID:       id,
		TenantID: tenantID,
		Name:     name,
		Slug:     slugValue,
		IsActive: true,
	}
	store.items = append(store.items, s)
	return s
}

func strPtr(s string) *string { return &s }

func TestCatalogService_Create_DerivesSlugFromName(t *testing.T) {
	store := &fakeSportStore{}
	audit := &fakeAuditSink{}
	svc := newSportFixture(store, audit)

	created, err := svc.Create(context.Background(), "tenant-1", "user-1", &domain.Sport{Name: "Formula 1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Slug != "formula-1" {
		t.Errorf("expected slug 'formula-1', got %q", created.Slug)
	}
	if created.ID == "" {
		t.Error("expected a generated ID")
	}
	if created.TenantID != "tenant-1" {
		t.Errorf("expected tenant binding, got %q", created.TenantID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	entry := audit.last()
	if entry == nil {
		t.Fatal("expected an audit entry")
	}
	if entry.Action != domain.AuditActionCreated {
		t.Errorf("expected action %q, got %q", domain.AuditActionCreated, entry.Action)
	}
	if entry.NewValues["name"] != "Formula 1" {
		t.Errorf("expected snapshot name in audit entry, got %v", entry.NewValues["name"])
	}
}

func TestCatalogService_Create_SanitizesInput(t *testing.T) {
	store := &fakeSportStore{}
	svc := newSportFixture(store, &fakeAuditSink{})

	created, err := svc.Create(context.Background(), "tenant-1", "user-1", &domain.Sport{
		Name:    "Tennis <b>Pro</b>",
		IconURL: "javascript:alert(1)",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Name != "Tennis &lt;b&gt;Pro&lt;&#x2F;b&gt;" {
		t.Errorf("expected escaped name, got %q", created.Name)
	}
	if created.IconURL != "" {
		t.Errorf("expected dangerous icon URL rejected, got %q", created.IconURL)
	}
}

func TestCatalogService_Create_InvalidExplicitSlug(t *testing.T) {
	store := &fakeSportStore{}
	svc := newSportFixture(store, &fakeAuditSink{})

	_, err := svc.Create(context.Background(), "tenant-1", "user-1", &domain.Sport{
		Name: "Tennis",
		Slug: "-bad-slug-",
	})

	var invalid *domain.InvalidSlugError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSlugError, got %v", err)
	}
	if len(store.items) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestCatalogService_Create_AutoRenamesOnCollision(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	svc := newSportFixture(store, &fakeAuditSink{})

	created, err := svc.Create(context.Background(), "tenant-1", "user-1", &domain.Sport{Name: "Tennis"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Name != "Tennis (Copy)" {
		t.Errorf("expected renamed 'Tennis (Copy)', got %q", created.Name)
	}
	if created.Slug != "tennis-1" {
		t.Errorf("expected slug 'tennis-1', got %q", created.Slug)
	}
}

func TestCatalogService_Create_IgnoresOtherTenants(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-2", "Tennis", "tennis")
	svc := newSportFixture(store, &fakeAuditSink{})

	created, err := svc.Create(context.Background(), "tenant-1", "user-1", &domain.Sport{Name: "Tennis"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Name != "Tennis" || created.Slug != "tennis" {
		t.Errorf("expected no rename across tenants, got %q / %q", created.Name, created.Slug)
	}
}

func TestCatalogService_Create_ReusesSoftDeletedName(t *testing.T) {
	store := &fakeSportStore{}
	seeded := seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	deleted := time.Now()
	seeded.DeletedAt = &deleted

	svc := newSportFixture(store, &fakeAuditSink{})

	created, err := svc.Create(context.Background(), "tenant-1", "user-1", &domain.Sport{Name: "Tennis"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Name != "Tennis" || created.Slug != "tennis" {
		t.Errorf("expected soft-deleted name reusable, got %q / %q", created.Name, created.Slug)
	}
}

func TestCatalogService_Update_AppliesPatch(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	audit := &fakeAuditSink{}
	svc := newSportFixture(store, audit)

	updated, err := svc.Update(context.Background(), "user-1", "s1", &dto.UpdateSportRequest{
		Name: strPtr("Table Tennis"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Name != "Table Tennis" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	// Slug is untouched when not in the patch.
	if updated.Slug != "tennis" {
		t.Errorf("expected slug unchanged, got %q", updated.Slug)
	}

	entry := audit.last()
	if entry == nil {
		t.Fatal("expected an audit entry")
	}
	if entry.Action != domain.AuditActionUpdated {
		t.Errorf("expected action %q, got %q", domain.AuditActionUpdated, entry.Action)
	}
	if entry.OldValues["name"] != "Tennis" {
		t.Errorf("expected old name in audit entry, got %v", entry.OldValues["name"])
	}
	if entry.NewValues["name"] != "Table Tennis" {
		t.Errorf("expected new name in audit entry, got %v", entry.NewValues["name"])
	}
}

func TestCatalogService_Update_RejectsNameConflict(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	seedSport(store, "s2", "tenant-1", "Golf", "golf")
	audit := &fakeAuditSink{}
	svc := newSportFixture(store, audit)

	_, err := svc.Update(context.Background(), "user-1", "s2", &dto.UpdateSportRequest{
		Name: strPtr("Tennis"),
	})

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if !conflict.OnName() {
		t.Errorf("expected conflict on name, got field %q", conflict.Field)
	}
	if len(audit.entries) != 0 {
		t.Error("expected no audit entry on rejected update")
	}

	current, _ := store.Get(context.Background(), "s2")
	if current.Name != "Golf" {
		t.Errorf("expected stored name unchanged, got %q", current.Name)
	}
}

func TestCatalogService_Update_RejectsSlugConflict(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	seedSport(store, "s2", "tenant-1", "Golf", "golf")
	svc := newSportFixture(store, &fakeAuditSink{})

	_, err := svc.Update(context.Background(), "user-1", "s2", &dto.UpdateSportRequest{
		Slug: strPtr("tennis"),
	})

	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if !conflict.OnSlug() {
		t.Errorf("expected conflict on slug, got field %q", conflict.Field)
	}
}

func TestCatalogService_Update_KeepingOwnValuesIsNotAConflict(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	svc := newSportFixture(store, &fakeAuditSink{})

	// Resubmitting the record's own name and slug must not collide with
	// itself.
	updated, err := svc.Update(context.Background(), "user-1", "s1", &dto.UpdateSportRequest{
		Name: strPtr("Tennis"),
		Slug: strPtr("tennis"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Tennis" || updated.Slug != "tennis" {
		t.Errorf("unexpected values: %q / %q", updated.Name, updated.Slug)
	}
}

func TestCatalogService_Update_InvalidSlug(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	svc := newSportFixture(store, &fakeAuditSink{})

	_, err := svc.Update(context.Background(), "user-1", "s1", &dto.UpdateSportRequest{
		Slug: strPtr("Bad Slug!"),
	})

	var invalid *domain.InvalidSlugError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSlugError, got %v", err)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	svc := newSportFixture(&fakeSportStore{}, &fakeAuditSink{})

	_, err := svc.Update(context.Background(), "user-1", "missing", &dto.UpdateSportRequest{
		Name: strPtr("Tennis"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_Delete_RecordsAudit(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	audit := &fakeAuditSink{}
	svc := newSportFixture(store, audit)

	if err := svc.Delete(context.Background(), "tenant-1", "user-1", "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.Get(context.Background(), "s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Error("expected record hidden after soft delete")
	}
	if _, err := store.GetIncludingDeleted(context.Background(), "s1"); err != nil {
		t.Error("expected record still stored after soft delete")
	}

	entry := audit.last()
	if entry == nil || entry.Action != domain.AuditActionDeleted {
		t.Fatalf("expected deleted audit entry, got %+v", entry)
	}
}

func TestCatalogService_BulkDelete_AuditPerIDInOrder(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	seedSport(store, "s2", "tenant-1", "Golf", "golf")
	seedSport(store, "s3", "tenant-1", "Rugby", "rugby")
	audit := &fakeAuditSink{}
	svc := newSportFixture(store, audit)

	ids := []string{"s3", "s1", "s2"}
	if err := svc.BulkDelete(context.Background(), "tenant-1", "user-1", ids); err != nil {
		t.Fatalf("BulkDelete failed: %v", err)
	}

	if len(audit.entries) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(audit.entries))
	}
	for i, id := range ids {
		if audit.entries[i].EntityID != id {
			t.Errorf("entry %d: expected entity %q, got %q", i, id, audit.entries[i].EntityID)
		}
		if audit.entries[i].Action != domain.AuditActionDeleted {
			t.Errorf("entry %d: expected deleted action, got %q", i, audit.entries[i].Action)
		}
	}
}

func TestCatalogService_BulkSetActive(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Tennis", "tennis")
	seedSport(store, "s2", "tenant-1", "Golf", "golf")
	audit := &fakeAuditSink{}
	svc := newSportFixture(store, audit)

	if err := svc.BulkSetActive(context.Background(), "tenant-1", "user-1", []string{"s1", "s2"}, false); err != nil {
		t.Fatalf("BulkSetActive failed: %v", err)
	}

	for _, s := range store.items {
		if s.IsActive {
			t.Errorf("expected %s deactivated", s.ID)
		}
	}
	if len(audit.entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(audit.entries))
	}
	if audit.entries[0].NewValues["is_active"] != false {
		t.Errorf("expected is_active=false in audit entry, got %v", audit.entries[0].NewValues)
	}
}

func TestCatalogService_BulkSetActive_UnsupportedKind(t *testing.T) {
	spec := sportSpec()
	spec.HasActive = false
	svc := NewCatalogService(spec, &fakeSportStore{}, &fakeAuditSink{})

	err := svc.BulkSetActive(context.Background(), "tenant-1", "user-1", []string{"s1"}, true)
	if err == nil {
		t.Fatal("expected error for unsupported entity kind")
	}
}

func TestCatalogService_Duplicate_CopyNameAndSlug(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Alpha", "alpha")
	audit := &fakeAuditSink{}
	svc := newSportFixture(store, audit)

	copy1, err := svc.Duplicate(context.Background(), "tenant-1", "user-1", "s1")
	if err != nil {
		t.Fatalf("Duplicate failed: %v", err)
	}
	if copy1.Name != "Alpha (Copy)" {
		t.Errorf("expected 'Alpha (Copy)', got %q", copy1.Name)
	}
	if copy1.Slug != "alpha-copy" {
		t.Errorf("expected 'alpha-copy', got %q", copy1.Slug)
	}
	if copy1.ID == "s1" {
		t.Error("expected a fresh ID")
	}

	copy2, err := svc.Duplicate(context.Background(), "tenant-1", "user-1", "s1")
	if err != nil {
		t.Fatalf("second Duplicate failed: %v", err)
	}
	if copy2.Name != "Alpha (Copy 1)" {
		t.Errorf("expected 'Alpha (Copy 1)', got %q", copy2.Name)
	}
	if copy2.Slug != "alpha-copy-1" {
		t.Errorf("expected 'alpha-copy-1', got %q", copy2.Slug)
	}

	entry := audit.last()
	if entry == nil || entry.Action != domain.AuditActionDuplicated {
		t.Fatalf("expected duplicated audit entry, got %+v", entry)
	}
	if entry.NewValues["original_id"] != "s1" {
		t.Errorf("expected original_id in audit entry, got %v", entry.NewValues)
	}
}

func TestCatalogService_Duplicate_SoftDeletedSource(t *testing.T) {
	store := &fakeSportStore{}
	seeded := seedSport(store, "s1", "tenant-1", "Alpha", "alpha")
	deleted := time.Now()
	seeded.DeletedAt = &deleted

	svc := newSportFixture(store, &fakeAuditSink{})

	copied, err := svc.Duplicate(context.Background(), "tenant-1", "user-1", "s1")
	if err != nil {
		t.Fatalf("Duplicate failed: %v", err)
	}
	// No live rows share the base name, so the first variant is free.
	if copied.Name != "Alpha (Copy)" {
		t.Errorf("expected 'Alpha (Copy)', got %q", copied.Name)
	}
	if copied.DeletedAt != nil {
		t.Error("expected the copy to be live")
	}
}

func TestCatalogService_Duplicate_CrossTenant(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-2", "Alpha", "alpha")
	svc := newSportFixture(store, &fakeAuditSink{})

	_, err := svc.Duplicate(context.Background(), "tenant-1", "user-1", "s1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-tenant source, got %v", err)
	}
}

func TestCatalogService_Duplicate_RetriesOnInsertRace(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Alpha", "alpha")
	// First insert loses a race to a concurrent duplication.
	store.insertErrs = []error{
		&domain.ConflictError{EntityType: "sport", Field: "name", Value: "Alpha (Copy)"},
	}
	svc := newSportFixture(store, &fakeAuditSink{})

	copied, err := svc.Duplicate(context.Background(), "tenant-1", "user-1", "s1")
	if err != nil {
		t.Fatalf("Duplicate failed after retry: %v", err)
	}
	if copied.Name != "Alpha (Copy)" {
		t.Errorf("expected 'Alpha (Copy)' on retry, got %q", copied.Name)
	}
}

func TestCatalogService_Duplicate_ExhaustsRetries(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Alpha", "alpha")
	store.insertErrs = []error{
		&domain.ConflictError{EntityType: "sport", Field: "name", Value: "Alpha (Copy)"},
		&domain.ConflictError{EntityType: "sport", Field: "name", Value: "Alpha (Copy)"},
		&domain.ConflictError{EntityType: "sport", Field: "name", Value: "Alpha (Copy)"},
	}
	svc := newSportFixture(store, &fakeAuditSink{})

	_, err := svc.Duplicate(context.Background(), "tenant-1", "user-1", "s1")

	var dup *domain.DuplicationError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicationError, got %v", err)
	}
	if dup.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", dup.Attempts)
	}
}

func TestCatalogService_Duplicate_NonConflictErrorPropagates(t *testing.T) {
	store := &fakeSportStore{}
	seedSport(store, "s1", "tenant-1", "Alpha", "alpha")
	storageErr := errors.New("connection reset")
	store.insertErrs = []error{storageErr}
	svc := newSportFixture(store, &fakeAuditSink{})

	_, err := svc.Duplicate(context.Background(), "tenant-1", "user-1", "s1")
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}
