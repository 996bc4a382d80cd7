// Package main runs the catalog HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/danielGPGT/pandora-backend/internal/di"
	"github.com/danielGPGT/pandora-backend/pkg/config"
	"github.com/danielGPGT/pandora-backend/pkg/database"
	"github.com/danielGPGT/pandora-backend/pkg/logger"
	"github.com/danielGPGT/pandora-backend/pkg/middleware"
	"github.com/danielGPGT/pandora-backend/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.Log.Level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  cfg.Log.OutputPath,
	}); err != nil {
		panic("init logger: " + err.Error())
	}
	log := logger.Get()
	defer log.Sync()

	ctx := context.Background()

	dbCfg := database.DefaultPostgresConfig()
	dbCfg.Host = cfg.Database.Host
	dbCfg.Port = cfg.Database.Port
	dbCfg.User = cfg.Database.User
	dbCfg.Password = cfg.Database.Password
	dbCfg.Database = cfg.Database.DBName
	dbCfg.SSLMode = cfg.Database.SSLMode
	dbCfg.MaxConns = int32(cfg.Database.MaxConns)
	dbCfg.MinConns = int32(cfg.Database.MinConns)
	dbCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime
	dbCfg.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime

	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db.Pool()); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	container := di.NewContainer(&di.ContainerConfig{
		DB:      db,
		Log:     log,
		Version: cfg.App.Version,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.NotFound("Route not found"))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Error(response.ErrCodeMethodNotAllowed, "Method not allowed"))
	})
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.JWTMiddleware(&middleware.JWTConfig{
		Secret:    cfg.JWT.Secret,
		SkipPaths: []string{"/health", "/metrics"},
	}))

	router.GET("/health", container.HealthHandler.Health)
	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api/v1")
	{
		sports := api.Group("/sports")
		{
			sports.GET("", container.SportHandler.List)
			sports.POST("", container.SportHandler.Create)
			sports.GET("/:id", container.SportHandler.GetByID)
			sports.PATCH("/:id", container.SportHandler.Update)
			sports.DELETE("/:id", container.SportHandler.Delete)
			sports.POST("/:id/duplicate", container.SportHandler.Duplicate)
			sports.POST("/bulk-delete", middleware.RequireRole("admin", "owner"), container.SportHandler.BulkDelete)
			sports.POST("/bulk-status", middleware.RequireRole("admin", "owner"), container.SportHandler.BulkStatus)
		}

		venues := api.Group("/venues")
		{
			venues.GET("", container.VenueHandler.List)
			venues.POST("", container.VenueHandler.Create)
			venues.GET("/:id", container.VenueHandler.GetByID)
			venues.PATCH("/:id", container.VenueHandler.Update)
			venues.DELETE("/:id", container.VenueHandler.Delete)
			venues.POST("/:id/duplicate", container.VenueHandler.Duplicate)
			venues.POST("/bulk-delete", middleware.RequireRole("admin", "owner"), container.VenueHandler.BulkDelete)
		}

		api.GET("/audit-logs", container.AuditHandler.List)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
