package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielGPGT/pandora-backend/internal/dto"
	"github.com/danielGPGT/pandora-backend/internal/service"
	"github.com/danielGPGT/pandora-backend/pkg/response"
)

// VenueHandler handles venue catalog HTTP requests
type VenueHandler struct {
	venueService service.VenueService
}

// NewVenueHandler creates a new VenueHandler
func NewVenueHandler(venueService service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// List handles retrieving all venues for the caller's tenant
// GET /api/v1/venues
func (h *VenueHandler) List(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.venueService.List(c.Request.Context(), tenantID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(result, len(result)))
}

// GetByID handles retrieving a venue by ID
// GET /api/v1/venues/:id
func (h *VenueHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Venue ID is required"))
		return
	}

	result, err := h.venueService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Create handles venue creation
// POST /api/v1/venues
func (h *VenueHandler) Create(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.venueService.Create(c.Request.Context(), tenantID, userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Update handles a partial venue update
// PATCH /api/v1/venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	_, userID, ok := identity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Venue ID is required"))
		return
	}

	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(map[string]string{"body": msg}))
		return
	}

	result, err := h.venueService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles venue soft deletion
// DELETE /api/v1/venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Venue ID is required"))
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), tenantID, userID, id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Venue deleted successfully"}))
}

// Duplicate handles copying a venue under a new name
// POST /api/v1/venues/:id/duplicate
func (h *VenueHandler) Duplicate(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Venue ID is required"))
		return
	}

	result, err := h.venueService.Duplicate(c.Request.Context(), tenantID, userID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// BulkDelete handles soft deletion of a batch of venues
// POST /api/v1/venues/bulk-delete
func (h *VenueHandler) BulkDelete(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if err := h.venueService.BulkDelete(c.Request.Context(), tenantID, userID, req.IDs); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": len(req.IDs)}))
}
