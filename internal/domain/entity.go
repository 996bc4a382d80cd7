package domain

// Entity is the common surface of catalog records (sports, venues). All
// uniqueness of names and slugs is scoped to a single tenant and only
// considers records that are not soft-deleted.
type Entity interface {
	GetID() string
	GetTenantID() string
	GetName() string
	GetSlug() string
	SetName(name string)
	SetSlug(slug string)
}
