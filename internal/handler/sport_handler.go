package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielGPGT/pandora-backend/internal/dto"
	"github.com/danielGPGT/pandora-backend/internal/service"
	"github.com/danielGPGT/pandora-backend/pkg/response"
)

// SportHandler handles sport catalog HTTP requests
type SportHandler struct {
	sportService service.SportService
}

// NewSportHandler creates a new SportHandler
func NewSportHandler(sportService service.SportService) *SportHandler {
	return &SportHandler{sportService: sportService}
}

// List handles retrieving all sports for the caller's tenant
// GET /api/v1/sports
func (h *SportHandler) List(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	result, err := h.sportService.List(c.Request.Context(), tenantID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(result, len(result)))
}

// GetByID handles retrieving a sport by ID
// GET /api/v1/sports/:id
func (h *SportHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Sport ID is required"))
		return
	}

	result, err := h.sportService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Create handles sport creation
// POST /api/v1/sports
func (h *SportHandler) Create(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.sportService.Create(c.Request.Context(), tenantID, userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Update handles a partial sport update
// PATCH /api/v1/sports/:id
func (h *SportHandler) Update(c *gin.Context) {
	_, userID, ok := identity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Sport ID is required"))
		return
	}

	var req dto.UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.ValidationFailed(map[string]string{"body": msg}))
		return
	}

	result, err := h.sportService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Delete handles sport soft deletion
// DELETE /api/v1/sports/:id
func (h *SportHandler) Delete(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Sport ID is required"))
		return
	}

	if err := h.sportService.Delete(c.Request.Context(), tenantID, userID, id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Sport deleted successfully"}))
}

// Duplicate handles copying a sport under a new name
// POST /api/v1/sports/:id/duplicate
func (h *SportHandler) Duplicate(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Sport ID is required"))
		return
	}

	result, err := h.sportService.Duplicate(c.Request.Context(), tenantID, userID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// BulkDelete handles soft deletion of a batch of sports
// POST /api/v1/sports/bulk-delete
func (h *SportHandler) BulkDelete(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if err := h.sportService.BulkDelete(c.Request.Context(), tenantID, userID, req.IDs); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": len(req.IDs)}))
}

// BulkStatus handles flipping the active flag for a batch of sports
// POST /api/v1/sports/bulk-status
func (h *SportHandler) BulkStatus(c *gin.Context) {
	tenantID, userID, ok := identity(c)
	if !ok {
		return
	}

	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if err := h.sportService.BulkSetActive(c.Request.Context(), tenantID, userID, req.IDs, *req.IsActive); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"updated": len(req.IDs)}))
}
