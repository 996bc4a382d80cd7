package dto

// ListAuditLogsQuery filters the audit timeline for a single record.
type ListAuditLogsQuery struct {
	EntityType string `form:"entity_type" binding:"required,oneof=sport venue"`
	EntityID   string `form:"entity_id" binding:"required"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// SetDefaults applies default values to optional query parameters.
func (q *ListAuditLogsQuery) SetDefaults() {
	if q.Limit == 0 {
		q.Limit = 50
	}
}
