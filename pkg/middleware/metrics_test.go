package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/danielGPGT/pandora-backend/internal/domain"
)

func TestRecordEntityMutation(t *testing.T) {
	// Callers pass the audit action constants, which are a defined string
	// type and must convert cleanly at this boundary.
	actions := []domain.AuditAction{
		domain.AuditActionCreated,
		domain.AuditActionUpdated,
		domain.AuditActionDeleted,
		domain.AuditActionDuplicated,
	}

	for _, action := range actions {
		before := testutil.ToFloat64(entityMutationsTotal.WithLabelValues("sport", string(action)))
		RecordEntityMutation("sport", string(action))
		after := testutil.ToFloat64(entityMutationsTotal.WithLabelValues("sport", string(action)))
		assert.Equal(t, before+1, after, "action %s", action)
	}
}

func TestRecordDuplicateRetry(t *testing.T) {
	before := testutil.ToFloat64(duplicateRetriesTotal)
	RecordDuplicateRetry()
	assert.Equal(t, before+1, testutil.ToFloat64(duplicateRetriesTotal))
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/api/v1/sports", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/sports", "200"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sports", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/sports", "200"))
	assert.Equal(t, before+1, after)
}
