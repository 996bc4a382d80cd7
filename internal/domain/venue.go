package domain

import (
	"time"
)

// Venue represents a physical venue configured by a tenant.
type Venue struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	VenueType   string     `json:"venue_type,omitempty"`
	City        string     `json:"city,omitempty"`
	CountryCode string     `json:"country_code,omitempty"`
	Capacity    int        `json:"capacity,omitempty"`
	Latitude    float64    `json:"latitude,omitempty"`
	Longitude   float64    `json:"longitude,omitempty"`
	Timezone    string     `json:"timezone,omitempty"`
	Description string     `json:"description,omitempty"`
	Images      []string   `json:"images,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"` // Soft delete support
}

func (v *Venue) GetID() string       { return v.ID }
func (v *Venue) GetTenantID() string { return v.TenantID }
func (v *Venue) GetName() string     { return v.Name }
func (v *Venue) GetSlug() string     { return v.Slug }
func (v *Venue) SetName(name string) { v.Name = name }
func (v *Venue) SetSlug(slug string) { v.Slug = slug }
