package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielGPGT/pandora-backend/internal/dto"
	"github.com/danielGPGT/pandora-backend/internal/service"
	"github.com/danielGPGT/pandora-backend/pkg/response"
)

// AuditHandler serves the audit timeline for catalog records
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles retrieving the audit timeline for one record, newest first
// GET /api/v1/audit-logs?entity_type=sport&entity_id=...
func (h *AuditHandler) List(c *gin.Context) {
	tenantID, _, ok := identity(c)
	if !ok {
		return
	}

	var query dto.ListAuditLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.auditService.ListByEntity(c.Request.Context(), tenantID, &query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.List(result, len(result)))
}
