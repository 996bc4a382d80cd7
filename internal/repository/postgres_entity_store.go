package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danielGPGT/pandora-backend/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

// TableSpec describes how one entity kind maps onto its table: column sets,
// display ordering, the optional active flag, and scan/argument functions.
// One PostgresEntityStore parameterized by a TableSpec replaces a
// per-entity repository.
type TableSpec[T domain.Entity] struct {
	// Table is the table name, e.g. "sports".
	Table string
	// EntityType names the kind in errors and audit entries, e.g. "sport".
	EntityType string
	// Columns is the full select/RETURNING column list.
	Columns []string
	// InsertColumns are the columns written on insert, aligned with the
	// values returned by InsertArgs.
	InsertColumns []string
	// UpdateColumns are the mutable columns written on update, aligned
	// with UpdateArgs. updated_at is managed by the store.
	UpdateColumns []string
	// OrderBy is the display ordering for List, e.g. "sort_order ASC".
	OrderBy string
	// ActiveColumn is the boolean status column, or "" when the entity
	// kind has no active flag.
	ActiveColumn string
	// Scan reads one row in Columns order.
	Scan func(row pgx.Row) (T, error)
	// InsertArgs produces the values for InsertColumns.
	InsertArgs func(entity T) []any
	// UpdateArgs produces the values for UpdateColumns.
	UpdateArgs func(entity T) []any
}

// PostgresEntityStore implements EntityStore for any TableSpec using a pgx
// connection pool.
type PostgresEntityStore[T domain.Entity] struct {
	pool *pgxpool.Pool
	spec TableSpec[T]

	selectList string
	insertSQL  string
	updateSQL  string
}

// NewPostgresEntityStore creates a store for the given table spec,
// precomputing its SQL statements.
func NewPostgresEntityStore[T domain.Entity](pool *pgxpool.Pool, spec TableSpec[T]) *PostgresEntityStore[T] {
	selectList := strings.Join(spec.Columns, ", ")

	placeholders := make([]string, len(spec.InsertColumns))
	for i := range spec.InsertColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		spec.Table,
		strings.Join(spec.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		selectList,
	)

	assignments := make([]string, len(spec.UpdateColumns))
	for i, col := range spec.UpdateColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}
	updateSQL := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = now() WHERE id = $1 AND deleted_at IS NULL RETURNING %s",
		spec.Table,
		strings.Join(assignments, ", "),
		selectList,
	)

	return &PostgresEntityStore[T]{
		pool:       pool,
		spec:       spec,
		selectList: selectList,
		insertSQL:  insertSQL,
		updateSQL:  updateSQL,
	}
}

// List retrieves all non-deleted entities for a tenant.
func (s *PostgresEntityStore[T]) List(ctx context.Context, tenantID string) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE tenant_id = $1 AND deleted_at IS NULL ORDER BY %s",
		s.selectList, s.spec.Table, s.spec.OrderBy,
	)
	rows, err := s.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := make([]T, 0)
	for rows.Next() {
		entity, err := s.spec.Scan(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

// Get retrieves a non-deleted entity by ID.
func (s *PostgresEntityStore[T]) Get(ctx context.Context, id string) (T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1 AND deleted_at IS NULL",
		s.selectList, s.spec.Table,
	)
	return s.getRow(ctx, query, id)
}

// GetIncludingDeleted retrieves an entity by ID regardless of soft-delete
// state.
func (s *PostgresEntityStore[T]) GetIncludingDeleted(ctx context.Context, id string) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", s.selectList, s.spec.Table)
	return s.getRow(ctx, query, id)
}

func (s *PostgresEntityStore[T]) getRow(ctx context.Context, query, id string) (T, error) {
	var zero T
	entity, err := s.spec.Scan(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return entity, nil
}

// ListNameSlugs retrieves the (name, slug) pairs of all non-deleted entities
// for a tenant, optionally excluding one ID.
func (s *PostgresEntityStore[T]) ListNameSlugs(ctx context.Context, tenantID, excludeID string) ([]NameSlug, error) {
	query := fmt.Sprintf(
		"SELECT name, slug FROM %s WHERE tenant_id = $1 AND deleted_at IS NULL",
		s.spec.Table,
	)
	args := []any{tenantID}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := make([]NameSlug, 0)
	for rows.Next() {
		var pair NameSlug
		if err := rows.Scan(&pair.Name, &pair.Slug); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, rows.Err()
}

// Insert persists a new entity and returns the stored row.
func (s *PostgresEntityStore[T]) Insert(ctx context.Context, entity T) (T, error) {
	var zero T
	created, err := s.spec.Scan(s.pool.QueryRow(ctx, s.insertSQL, s.spec.InsertArgs(entity)...))
	if err != nil {
		return zero, s.translateUnique(err)
	}
	return created, nil
}

// Update persists all mutable columns and refreshes updated_at.
func (s *PostgresEntityStore[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T
	args := append([]any{entity.GetID()}, s.spec.UpdateArgs(entity)...)
	updated, err := s.spec.Scan(s.pool.QueryRow(ctx, s.updateSQL, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, domain.ErrNotFound
		}
		return zero, s.translateUnique(err)
	}
	return updated, nil
}

// SoftDelete marks the given IDs as deleted in one statement. Already
// deleted rows are updated again rather than rejected.
func (s *PostgresEntityStore[T]) SoftDelete(ctx context.Context, ids []string) error {
	query := fmt.Sprintf("UPDATE %s SET deleted_at = now() WHERE id = ANY($1)", s.spec.Table)
	_, err := s.pool.Exec(ctx, query, ids)
	return err
}

// SetActive flips the active flag for the given IDs in one statement.
func (s *PostgresEntityStore[T]) SetActive(ctx context.Context, ids []string, active bool) error {
	if s.spec.ActiveColumn == "" {
		return fmt.Errorf("%s has no active flag", s.spec.EntityType)
	}
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2, updated_at = now() WHERE id = ANY($1)",
		s.spec.Table, s.spec.ActiveColumn,
	)
	_, err := s.pool.Exec(ctx, query, ids, active)
	return err
}

// translateUnique maps a unique-constraint violation onto the conflict
// taxonomy by inspecting which constraint fired.
func (s *PostgresEntityStore[T]) translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	constraint := pgErr.ConstraintName
	switch {
	case strings.Contains(constraint, "slug"):
		return &domain.ConflictError{EntityType: s.spec.EntityType, Field: "slug"}
	case strings.Contains(constraint, "name"):
		return &domain.ConflictError{EntityType: s.spec.EntityType, Field: "name"}
	default:
		return &domain.ConflictError{EntityType: s.spec.EntityType}
	}
}
