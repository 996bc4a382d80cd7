package service

import (
	"context"
	"time"

	"github.com/danielGPGT/pandora-backend/internal/domain"
	"github.com/danielGPGT/pandora-backend/internal/dto"
	"github.com/danielGPGT/pandora-backend/internal/repository"
	"github.com/danielGPGT/pandora-backend/pkg/sanitize"
)

// SportService defines the interface for sport catalog operations.
type SportService interface {
	// List retrieves all non-deleted sports for a tenant by sort order.
	List(ctx context.Context, tenantID string) ([]*domain.Sport, error)
	// Get retrieves a sport by ID.
	Get(ctx context.Context, id string) (*domain.Sport, error)
	// Create creates a new sport, renaming on collision.
	Create(ctx context.Context, tenantID, userID string, req *dto.CreateSportRequest) (*domain.Sport, error)
	// Update applies a partial update, rejecting collisions.
	Update(ctx context.Context, userID, id string, req *dto.UpdateSportRequest) (*domain.Sport, error)
	// Delete soft-deletes a sport.
	Delete(ctx context.Context, tenantID, userID, id string) error
	// Duplicate copies a sport under a "(Copy)" name.
	Duplicate(ctx context.Context, tenantID, userID, id string) (*domain.Sport, error)
	// BulkDelete soft-deletes a batch of sports.
	BulkDelete(ctx context.Context, tenantID, userID string, ids []string) error
	// BulkSetActive flips the active flag for a batch of sports.
	BulkSetActive(ctx context.Context, tenantID, userID string, ids []string, active bool) error
}

// sportService implements SportService on top of the catalog core.
type sportService struct {
	catalog *CatalogService[*domain.Sport, *dto.UpdateSportRequest]
}

// NewSportService creates a new SportService.
func NewSportService(store repository.EntityStore[*domain.Sport], audit AuditSink) SportService {
	return &sportService{
		catalog: NewCatalogService(sportSpec(), store, audit),
	}
}

func sportSpec() EntitySpec[*domain.Sport, *dto.UpdateSportRequest] {
	return EntitySpec[*domain.Sport, *dto.UpdateSportRequest]{
		EntityType: "sport",
		Sanitize: func(s *domain.Sport) {
			s.Name = sanitize.Clean(sanitize.ModeText, s.Name)
			s.Slug = sanitize.Clean(sanitize.ModeText, s.Slug)
			s.Description = sanitize.Clean(sanitize.ModeRichText, s.Description)
			s.IconURL = sanitize.Clean(sanitize.ModeURL, s.IconURL)
			s.ImageURL = sanitize.Clean(sanitize.ModeURL, s.ImageURL)
		},
		SanitizeCopy: func(s *domain.Sport) {
			// Name and slug are skipped: duplication resolves them
			// separately before the copy is built.
			s.Description = sanitize.Clean(sanitize.ModeRichText, s.Description)
			s.IconURL = sanitize.Clean(sanitize.ModeURL, s.IconURL)
			s.ImageURL = sanitize.Clean(sanitize.ModeURL, s.ImageURL)
		},
		Clone: func(s *domain.Sport) *domain.Sport {
			clone := *s
			return &clone
		},
		Reissue: func(s *domain.Sport, id, tenantID string, now time.Time) {
			s.ID = id
			s.TenantID = tenantID
			s.CreatedAt = now
			s.UpdatedAt = now
			s.DeletedAt = nil
		},
		Apply: func(s *domain.Sport, p *dto.UpdateSportRequest) {
			if p.Name != nil {
				s.Name = sanitize.Clean(sanitize.ModeText, *p.Name)
			}
			if p.Slug != nil {
				s.Slug = sanitize.Clean(sanitize.ModeText, *p.Slug)
			}
			if p.Description != nil {
				s.Description = sanitize.Clean(sanitize.ModeRichText, *p.Description)
			}
			if p.IconURL != nil {
				s.IconURL = sanitize.Clean(sanitize.ModeURL, *p.IconURL)
			}
			if p.ImageURL != nil {
				s.ImageURL = sanitize.Clean(sanitize.ModeURL, *p.ImageURL)
			}
			if p.IsActive != nil {
				s.IsActive = *p.IsActive
			}
			if p.SortOrder != nil {
				s.SortOrder = *p.SortOrder
			}
		},
		HasActive: true,
	}
}

func (s *sportService) List(ctx context.Context, tenantID string) ([]*domain.Sport, error) {
	return s.catalog.List(ctx, tenantID)
}

func (s *sportService) Get(ctx context.Context, id string) (*domain.Sport, error) {
	return s.catalog.Get(ctx, id)
}

func (s *sportService) Create(ctx context.Context, tenantID, userID string, req *dto.CreateSportRequest) (*domain.Sport, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	sport := &domain.Sport{
		Name:        req.Name,
		Slug:        req.Slug,
		IconURL:     req.IconURL,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		IsActive:    isActive,
		SortOrder:   req.SortOrder,
	}
	return s.catalog.Create(ctx, tenantID, userID, sport)
}

func (s *sportService) Update(ctx context.Context, userID, id string, req *dto.UpdateSportRequest) (*domain.Sport, error) {
	return s.catalog.Update(ctx, userID, id, req)
}

func (s *sportService) Delete(ctx context.Context, tenantID, userID, id string) error {
	return s.catalog.Delete(ctx, tenantID, userID, id)
}

func (s *sportService) Duplicate(ctx context.Context, tenantID, userID, id string) (*domain.Sport, error) {
	return s.catalog.Duplicate(ctx, tenantID, userID, id)
}

func (s *sportService) BulkDelete(ctx context.Context, tenantID, userID string, ids []string) error {
	return s.catalog.BulkDelete(ctx, tenantID, userID, ids)
}

func (s *sportService) BulkSetActive(ctx context.Context, tenantID, userID string, ids []string, active bool) error {
	return s.catalog.BulkSetActive(ctx, tenantID, userID, ids, active)
}
