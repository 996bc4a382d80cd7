package service

import (
	"context"
	"time"

	"github.com/danielGPGT/pandora-backend/internal/domain"
	"github.com/danielGPGT/pandora-backend/internal/dto"
	"github.com/danielGPGT/pandora-backend/internal/repository"
	"github.com/danielGPGT/pandora-backend/pkg/sanitize"
)

// VenueService defines the interface for venue catalog operations.
type VenueService interface {
	// List retrieves all non-deleted venues for a tenant by name.
	List(ctx context.Context, tenantID string) ([]*domain.Venue, error)
	// Get retrieves a venue by ID.
	Get(ctx context.Context, id string) (*domain.Venue, error)
	// Create creates a new venue, renaming on collision.
	Create(ctx context.Context, tenantID, userID string, req *dto.CreateVenueRequest) (*domain.Venue, error)
	// Update applies a partial update, rejecting collisions.
	Update(ctx context.Context, userID, id string, req *dto.UpdateVenueRequest) (*domain.Venue, error)
	// Delete soft-deletes a venue.
	Delete(ctx context.Context, tenantID, userID, id string) error
	// Duplicate copies a venue under a "(Copy)" name.
	Duplicate(ctx context.Context, tenantID, userID, id string) (*domain.Venue, error)
	// BulkDelete soft-deletes a batch of venues.
	BulkDelete(ctx context.Context, tenantID, userID string, ids []string) error
}

// venueService implements VenueService on top of the catalog core.
type venueService struct {
	catalog *CatalogService[*domain.Venue, *dto.UpdateVenueRequest]
}

// NewVenueService creates a new VenueService.
func NewVenueService(store repository.EntityStore[*domain.Venue], audit AuditSink) VenueService {
	return &venueService{
		catalog: NewCatalogService(venueSpec(), store, audit),
	}
}

func venueSpec() EntitySpec[*domain.Venue, *dto.UpdateVenueRequest] {
	return EntitySpec[*domain.Venue, *dto.UpdateVenueRequest]{
		EntityType: "venue",
		Sanitize: func(v *domain.Venue) {
			v.Name = sanitize.Clean(sanitize.ModeText, v.Name)
			v.Slug = sanitize.Clean(sanitize.ModeText, v.Slug)
			v.VenueType = sanitize.Clean(sanitize.ModeText, v.VenueType)
			v.City = sanitize.Clean(sanitize.ModeText, v.City)
			v.CountryCode = sanitize.Clean(sanitize.ModeText, v.CountryCode)
			v.Timezone = sanitize.Clean(sanitize.ModeText, v.Timezone)
			v.Description = sanitize.Clean(sanitize.ModeRichText, v.Description)
			v.Images = sanitizeImages(v.Images)
		},
		SanitizeCopy: func(v *domain.Venue) {
			// Name and slug are skipped: duplication resolves them
			// separately before the copy is built.
			v.VenueType = sanitize.Clean(sanitize.ModeText, v.VenueType)
			v.City = sanitize.Clean(sanitize.ModeText, v.City)
			v.CountryCode = sanitize.Clean(sanitize.ModeText, v.CountryCode)
			v.Timezone = sanitize.Clean(sanitize.ModeText, v.Timezone)
			v.Description = sanitize.Clean(sanitize.ModeRichText, v.Description)
			v.Images = sanitizeImages(v.Images)
		},
		Clone: func(v *domain.Venue) *domain.Venue {
			clone := *v
			if v.Images != nil {
				clone.Images = append([]string(nil), v.Images...)
			}
			return &clone
		},
		Reissue: func(v *domain.Venue, id, tenantID string, now time.Time) {
			v.ID = id
			v.TenantID = tenantID
			v.CreatedAt = now
			v.UpdatedAt = now
			v.DeletedAt = nil
		},
		Apply: func(v *domain.Venue, p *dto.UpdateVenueRequest) {
			if p.Name != nil {
				v.Name = sanitize.Clean(sanitize.ModeText, *p.Name)
			}
			if p.Slug != nil {
				v.Slug = sanitize.Clean(sanitize.ModeText, *p.Slug)
			}
			if p.VenueType != nil {
				v.VenueType = sanitize.Clean(sanitize.ModeText, *p.VenueType)
			}
			if p.City != nil {
				v.City = sanitize.Clean(sanitize.ModeText, *p.City)
			}
			if p.CountryCode != nil {
				v.CountryCode = sanitize.Clean(sanitize.ModeText, *p.CountryCode)
			}
			if p.Capacity != nil {
				v.Capacity = *p.Capacity
			}
			if p.Latitude != nil {
				v.Latitude = *p.Latitude
			}
			if p.Longitude != nil {
				v.Longitude = *p.Longitude
			}
			if p.Timezone != nil {
				v.Timezone = sanitize.Clean(sanitize.ModeText, *p.Timezone)
			}
			if p.Description != nil {
				v.Description = sanitize.Clean(sanitize.ModeRichText, *p.Description)
			}
			if p.Images != nil {
				v.Images = sanitizeImages(*p.Images)
			}
		},
	}
}

// sanitizeImages applies URL sanitization to each image, dropping rejected
// entries.
func sanitizeImages(images []string) []string {
	if images == nil {
		return nil
	}
	cleaned := make([]string, 0, len(images))
	for _, img := range images {
		if safe := sanitize.Clean(sanitize.ModeURL, img); safe != "" {
			cleaned = append(cleaned, safe)
		}
	}
	return cleaned
}

func (s *venueService) List(ctx context.Context, tenantID string) ([]*domain.Venue, error) {
	return s.catalog.List(ctx, tenantID)
}

func (s *venueService) Get(ctx context.Context, id string) (*domain.Venue, error) {
	return s.catalog.Get(ctx, id)
}

func (s *venueService) Create(ctx context.Context, tenantID, userID string, req *dto.CreateVenueRequest) (*domain.Venue, error) {
	venue := &domain.Venue{
		Name:        req.Name,
		Slug:        req.Slug,
		VenueType:   req.VenueType,
		City:        req.City,
		CountryCode: req.CountryCode,
		Capacity:    req.Capacity,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Timezone:    req.Timezone,
		Description: req.Description,
		Images:      req.Images,
	}
	return s.catalog.Create(ctx, tenantID, userID, venue)
}

func (s *venueService) Update(ctx context.Context, userID, id string, req *dto.UpdateVenueRequest) (*domain.Venue, error) {
	return s.catalog.Update(ctx, userID, id, req)
}

func (s *venueService) Delete(ctx context.Context, tenantID, userID, id string) error {
	return s.catalog.Delete(ctx, tenantID, userID, id)
}

func (s *venueService) Duplicate(ctx context.Context, tenantID, userID, id string) (*domain.Venue, error) {
	return s.catalog.Duplicate(ctx, tenantID, userID, id)
}

func (s *venueService) BulkDelete(ctx context.Context, tenantID, userID string, ids []string) error {
	return s.catalog.BulkDelete(ctx, tenantID, userID, ids)
}
