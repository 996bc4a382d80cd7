package dto

// CreateVenueRequest represents request to create a venue. Slug is optional
// and derived from the name when omitted.
type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Slug        string   `json:"slug" binding:"omitempty,max=100"`
	VenueType   string   `json:"venue_type" binding:"omitempty,max=100"`
	City        string   `json:"city" binding:"omitempty,max=255"`
	CountryCode string   `json:"country_code" binding:"omitempty,len=2"`
	Capacity    int      `json:"capacity" binding:"omitempty,min=0"`
	Latitude    float64  `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   float64  `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Timezone    string   `json:"timezone" binding:"omitempty,max=64"`
	Description string   `json:"description" binding:"omitempty"`
	Images      []string `json:"images" binding:"omitempty"`
}

// UpdateVenueRequest represents a partial update; only non-nil fields are
// applied.
type UpdateVenueRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=255"`
	Slug        *string   `json:"slug" binding:"omitempty,max=100"`
	VenueType   *string   `json:"venue_type" binding:"omitempty,max=100"`
	City        *string   `json:"city" binding:"omitempty,max=255"`
	CountryCode *string   `json:"country_code" binding:"omitempty,len=2"`
	Capacity    *int      `json:"capacity" binding:"omitempty,min=0"`
	Latitude    *float64  `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64  `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Timezone    *string   `json:"timezone" binding:"omitempty,max=64"`
	Description *string   `json:"description" binding:"omitempty"`
	Images      *[]string `json:"images" binding:"omitempty"`
}

// PatchName implements the service patch contract.
func (r *UpdateVenueRequest) PatchName() *string { return r.Name }

// PatchSlug implements the service patch contract.
func (r *UpdateVenueRequest) PatchSlug() *string { return r.Slug }

// Validate checks that at least one field is provided.
func (r *UpdateVenueRequest) Validate() (bool, string) {
	if r.Name == nil && r.Slug == nil && r.VenueType == nil && r.City == nil &&
		r.CountryCode == nil && r.Capacity == nil && r.Latitude == nil &&
		r.Longitude == nil && r.Timezone == nil && r.Description == nil && r.Images == nil {
		return false, "At least one field must be provided"
	}
	return true, ""
}
