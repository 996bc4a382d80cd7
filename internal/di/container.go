package di

import (
	"github.com/danielGPGT/pandora-backend/internal/domain"
	"github.com/danielGPGT/pandora-backend/internal/handler"
	"github.com/danielGPGT/pandora-backend/internal/repository"
	"github.com/danielGPGT/pandora-backend/internal/service"
	"github.com/danielGPGT/pandora-backend/pkg/database"
	"github.com/danielGPGT/pandora-backend/pkg/logger"
)

// Container holds all dependencies for the catalog service
type Container struct {
	// Infrastructure
	DB  *database.PostgresDB
	Log *logger.Logger

	// Repositories
	SportStore *repository.PostgresEntityStore[*domain.Sport]
	VenueStore *repository.PostgresEntityStore[*domain.Venue]
	AuditRepo  repository.AuditRepository

	// Services
	AuditService *service.AuditService
	SportService service.SportService
	VenueService service.VenueService

	// Handlers
	HealthHandler *handler.HealthHandler
	SportHandler  *handler.SportHandler
	VenueHandler  *handler.VenueHandler
	AuditHandler  *handler.AuditHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB      *database.PostgresDB
	Log     *logger.Logger
	Version string
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:  cfg.DB,
		Log: cfg.Log,
	}

	pool := cfg.DB.Pool()

	// Initialize repositories
	c.SportStore = repository.NewPostgresSportStore(pool)
	c.VenueStore = repository.NewPostgresVenueStore(pool)
	c.AuditRepo = repository.NewPostgresAuditRepository(pool)

	// Initialize services
	c.AuditService = service.NewAuditService(c.AuditRepo, c.Log)
	c.SportService = service.NewSportService(c.SportStore, c.AuditService)
	c.VenueService = service.NewVenueService(c.VenueStore, c.AuditService)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, cfg.Version)
	c.SportHandler = handler.NewSportHandler(c.SportService)
	c.VenueHandler = handler.NewVenueHandler(c.VenueService)
	c.AuditHandler = handler.NewAuditHandler(c.AuditService)

	return c
}
