package domain

import (
	"time"
)

// Sport represents a sport discipline configured by a tenant.
type Sport struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	IconURL     string     `json:"icon_url,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

func (s *Sport) GetID() string       { return s.ID }
func (s *Sport) GetTenantID() string { return s.TenantID }
func (s *Sport) GetName() string     { return s.Name }
func (s *Sport) GetSlug() string     { return s.Slug }
func (s *Sport) SetName(name string) { s.Name = name }
func (s *Sport) SetSlug(slug string) { s.Slug = slug }
