package repository

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danielGPGT/pandora-backend/internal/domain"
)

// NewPostgresVenueStore creates an EntityStore for venues, ordered by name.
func NewPostgresVenueStore(pool *pgxpool.Pool) *PostgresEntityStore[*domain.Venue] {
	return NewPostgresEntityStore(pool, TableSpec[*domain.Venue]{
		Table:      "venues",
		EntityType: "venue",
		Columns: []string{
			"id", "tenant_id", "name", "slug", "venue_type", "city",
			"country_code", "capacity", "latitude", "longitude", "timezone",
			"description", "images",
			"created_at", "updated_at", "deleted_at",
		},
		InsertColumns: []string{
			"id", "tenant_id", "name", "slug", "venue_type", "city",
			"country_code", "capacity", "latitude", "longitude", "timezone",
			"description", "images",
			"created_at", "updated_at",
		},
		UpdateColumns: []string{
			"name", "slug", "venue_type", "city",
			"country_code", "capacity", "latitude", "longitude", "timezone",
			"description", "images",
		},
		OrderBy: "name ASC",
		Scan:    scanVenue,
		InsertArgs: func(v *domain.Venue) []any {
			return []any{
				v.ID, v.TenantID, v.Name, v.Slug, v.VenueType, v.City,
				v.CountryCode, v.Capacity, v.Latitude, v.Longitude, v.Timezone,
				v.Description, v.Images,
				v.CreatedAt, v.UpdatedAt,
			}
		},
		UpdateArgs: func(v *domain.Venue) []any {
			return []any{
				v.Name, v.Slug, v.VenueType, v.City,
				v.CountryCode, v.Capacity, v.Latitude, v.Longitude, v.Timezone,
				v.Description, v.Images,
			}
		},
	})
}

func scanVenue(row pgx.Row) (*domain.Venue, error) {
	var v domain.Venue
	err := row.Scan(
		&v.ID, &v.TenantID, &v.Name, &v.Slug, &v.VenueType, &v.City,
		&v.CountryCode, &v.Capacity, &v.Latitude, &v.Longitude, &v.Timezone,
		&v.Description, &v.Images,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
