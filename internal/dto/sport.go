package dto

// CreateSportRequest represents request to create a sport. Slug is optional
// and derived from the name when omitted.
type CreateSportRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	IconURL     string `json:"icon_url" binding:"omitempty"`
	ImageURL    string `json:"image_url" binding:"omitempty"`
	Description string `json:"description" binding:"omitempty"`
	IsActive    *bool  `json:"is_active" binding:"omitempty"`
	SortOrder   int    `json:"sort_order" binding:"omitempty,min=0"`
}

// UpdateSportRequest represents a partial update; only non-nil fields are
// applied.
type UpdateSportRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,max=100"`
	IconURL     *string `json:"icon_url" binding:"omitempty"`
	ImageURL    *string `json:"image_url" binding:"omitempty"`
	Description *string `json:"description" binding:"omitempty"`
	IsActive    *bool   `json:"is_active" binding:"omitempty"`
	SortOrder   *int    `json:"sort_order" binding:"omitempty,min=0"`
}

// PatchName implements the service patch contract.
func (r *UpdateSportRequest) PatchName() *string { return r.Name }

// PatchSlug implements the service patch contract.
func (r *UpdateSportRequest) PatchSlug() *string { return r.Slug }

// Validate checks that at least one field is provided.
func (r *UpdateSportRequest) Validate() (bool, string) {
	if r.Name == nil && r.Slug == nil && r.IconURL == nil && r.ImageURL == nil &&
		r.Description == nil && r.IsActive == nil && r.SortOrder == nil {
		return false, "At least one field must be provided"
	}
	return true, ""
}

// BulkDeleteRequest identifies the records to soft-delete.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// BulkStatusRequest sets the active flag for a batch of sports.
type BulkStatusRequest struct {
	IDs      []string `json:"ids" binding:"required,min=1,dive,required"`
	IsActive *bool    `json:"is_active" binding:"required"`
}
