package repository

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danielGPGT/pandora-backend/internal/domain"
)

// NewPostgresSportStore creates an EntityStore for sports, ordered by their
// explicit sort order.
func NewPostgresSportStore(pool *pgxpool.Pool) *PostgresEntityStore[*domain.Sport] {
	return NewPostgresEntityStore(pool, TableSpec[*domain.Sport]{
		Table:      "sports",
		EntityType: "sport",
		Columns: []string{
			"id", "tenant_id", "name", "slug", "icon_url", "image_url",
			"description", "is_active", "sort_order",
			"created_at", "updated_at", "deleted_at",
		},
		InsertColumns: []string{
			"id", "tenant_id", "name", "slug", "icon_url", "image_url",
			"description", "is_active", "sort_order",
			"created_at", "updated_at",
		},
		UpdateColumns: []string{
			"name", "slug", "icon_url", "image_url",
			"description", "is_active", "sort_order",
		},
		OrderBy:      "sort_order ASC",
		ActiveColumn: "is_active",
		Scan:         scanSport,
		InsertArgs: func(s *domain.Sport) []any {
			return []any{
				s.ID, s.TenantID, s.Name, s.Slug, s.IconURL, s.ImageURL,
				s.Description, s.IsActive, s.SortOrder,
				s.CreatedAt, s.UpdatedAt,
			}
		},
		UpdateArgs: func(s *domain.Sport) []any {
			return []any{
				s.Name, s.Slug, s.IconURL, s.ImageURL,
				s.Description, s.IsActive, s.SortOrder,
			}
		},
	})
}

func scanSport(row pgx.Row) (*domain.Sport, error) {
	var s domain.Sport
	err := row.Scan(
		&s.ID, &s.TenantID, &s.Name, &s.Slug, &s.IconURL, &s.ImageURL,
		&s.Description, &s.IsActive, &s.SortOrder,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
