package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielGPGT/pandora-backend/internal/domain"
	"github.com/danielGPGT/pandora-backend/pkg/middleware"
	"github.com/danielGPGT/pandora-backend/pkg/response"
)

// writeError maps domain errors to an error code, then resolves the HTTP
// status from the code table. Anything unrecognized is a 500.
func writeError(c *gin.Context, err error) {
	code := response.ErrCodeInternalError
	message := err.Error()

	var invalidSlug *domain.InvalidSlugError
	var conflict *domain.ConflictError
	var duplication *domain.DuplicationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = response.ErrCodeNotFound
		message = "Resource not found"
	case errors.As(err, &invalidSlug):
		code = response.ErrCodeInvalidSlug
	case errors.As(err, &conflict):
		code = response.ErrCodeDuplicateName
		if conflict.OnSlug() {
			code = response.ErrCodeDuplicateSlug
		}
	case errors.As(err, &duplication):
		code = response.ErrCodeDuplicationFailed
	}

	c.JSON(response.GetHTTPStatus(code), response.Error(code, message))
}

// identity extracts the caller's user and tenant from the gin context. The
// JWT middleware guarantees both are present on protected routes.
func identity(c *gin.Context) (tenantID, userID string, ok bool) {
	tenantID, tenantOK := middleware.GetTenantID(c)
	userID, userOK := middleware.GetUserID(c)
	if !tenantOK || !userOK {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return "", "", false
	}
	return tenantID, userID, true
}
