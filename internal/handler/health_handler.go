package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielGPGT/pandora-backend/pkg/database"
	"github.com/danielGPGT/pandora-backend/pkg/response"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db      *database.PostgresDB
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Health reports service health including database reachability
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.ServiceUnavailable("database unreachable"))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"status":  "ok",
		"version": h.version,
	}))
}
