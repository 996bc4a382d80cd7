package domain

import (
	"time"
)

// AuditAction is the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreated    AuditAction = "created"
	AuditActionUpdated    AuditAction = "updated"
	AuditActionDeleted    AuditAction = "deleted"
	AuditActionDuplicated AuditAction = "duplicated"
)

// AuditEntry is an immutable record of a single mutation: who changed what,
// and the before/after snapshots. Entries are append-only and never used for
// correctness enforcement.
type AuditEntry struct {
	ID         string         `json:"id"`
	TenantID   string         `json:"tenant_id"`
	UserID     string         `json:"user_id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     AuditAction    `json:"action"`
	OldValues  map[string]any `json:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
