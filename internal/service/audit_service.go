package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danielGPGT/pandora-backend/internal/domain"
	"github.com/danielGPGT/pandora-backend/internal/dto"
	"github.com/danielGPGT/pandora-backend/internal/repository"
	"github.com/danielGPGT/pandora-backend/pkg/logger"
)

// AuditService records mutation history and serves the audit timeline.
type AuditService struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewAuditService creates a new AuditService.
func NewAuditService(repo repository.AuditRepository, log *logger.Logger) *AuditService {
	return &AuditService{repo: repo, log: log}
}

// Record appends one audit entry. Failures are logged and swallowed: audit
// history is observability, and a failed write must never undo or fail the
// mutation that already committed.
func (s *AuditService) Record(ctx context.Context, entry *domain.AuditEntry) {
	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now()

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Error("failed to record audit entry",
			zap.String("entity_type", entry.EntityType),
			zap.String("entity_id", entry.EntityID),
			zap.String("action", string(entry.Action)),
			zap.Error(err),
		)
	}
}

// ListByEntity retrieves the audit timeline for one record, newest first.
func (s *AuditService) ListByEntity(ctx context.Context, tenantID string, query *dto.ListAuditLogsQuery) ([]*domain.AuditEntry, error) {
	query.SetDefaults()
	return s.repo.ListByEntity(ctx, tenantID, query.EntityType, query.EntityID, query.Limit)
}
