package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danielGPGT/pandora-backend/internal/domain"
)

// PostgresAuditRepository implements AuditRepository using PostgreSQL.
type PostgresAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuditRepository creates a new PostgresAuditRepository.
func NewPostgresAuditRepository(pool *pgxpool.Pool) *PostgresAuditRepository {
	return &PostgresAuditRepository{pool: pool}
}

// Insert appends one audit entry.
func (r *PostgresAuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (id, tenant_id, user_id, entity_type, entity_id, action, old_values, new_values, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.TenantID,
		entry.UserID,
		entry.EntityType,
		entry.EntityID,
		string(entry.Action),
		marshalValues(entry.OldValues),
		marshalValues(entry.NewValues),
		entry.CreatedAt,
	)
	return err
}

// ListByEntity retrieves the newest entries for one record, newest first.
func (r *PostgresAuditRepository) ListByEntity(ctx context.Context, tenantID, entityType, entityID string, limit int) ([]*domain.AuditEntry, error) {
	query := `
		SELECT id, tenant_id, user_id, entity_type, entity_id, action, old_values, new_values, created_at
		FROM audit_logs
		WHERE tenant_id = $1 AND entity_type = $2 AND entity_id = $3
		ORDER BY created_at DESC
		LIMIT $4
	`
	rows, err := r.pool.Query(ctx, query, tenantID, entityType, entityID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0)
	for rows.Next() {
		entry := &domain.AuditEntry{}
		var action string
		err := rows.Scan(
			&entry.ID,
			&entry.TenantID,
			&entry.UserID,
			&entry.EntityType,
			&entry.EntityID,
			&action,
			&entry.OldValues,
			&entry.NewValues,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entry.Action = domain.AuditAction(action)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// marshalValues serializes a snapshot for a jsonb column, mapping empty
// snapshots to NULL.
func marshalValues(values map[string]any) any {
	if len(values) == 0 {
		return nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return data
}
