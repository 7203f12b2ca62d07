package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"moviedb/docs"
	"moviedb/internal/cache"
	"moviedb/internal/config"
	"moviedb/internal/database"
	"moviedb/internal/database/migration"
	handlers "moviedb/internal/http/handler"
	"moviedb/internal/http/middleware"
	"moviedb/internal/logger"
	"moviedb/internal/model"
	"moviedb/internal/otel"
	"moviedb/internal/repository/postgres"
	"moviedb/internal/service"
	"moviedb/internal/storage"
)

// @title MovieDB API
// @version 1.0
// @description Movies and TV shows catalog.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.Location)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error("failed to initialize tracing", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Error("failed to migrate database", "error", err.Error())
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, database.ApplicationName),
	)

	// Poster storage is optional; without it uploads answer 503
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Error("failed to initialize object storage", "error", err.Error())
			os.Exit(1)
		}
	} else {
		log.Warn("object storage disabled", "reason", "MINIO_ENDPOINT not set")
	}

	cacheMetrics, err := cache.NewMetrics(reg, "show_ratings")
	if err != nil {
		log.Error("failed to register cache metrics", "error", err.Error())
		os.Exit(1)
	}
	showRatings := service.NewShowRatingCache(cfg.Cache, cacheMetrics)

	// Initialize repositories and services
	movies := postgres.NewMoviePostgres(db)
	shows := postgres.NewTVShowPostgres(db)
	actors := postgres.NewPersonPostgres(db, model.KindActor)
	directors := postgres.NewPersonPostgres(db, model.KindDirector)

	posterSvc := service.NewPosterService(objStore, movies, shows, log)
	catalogSvc := service.NewCatalogService(movies, shows, actors, directors, showRatings, posterSvc, cfg.Paging)
	searchSvc := service.NewSearchService(movies, shows, actors, directors)
	ratingSvc := service.NewRatingService(postgres.NewRatingPostgres(db), shows, showRatings)

	httpMetrics, err := middleware.NewHTTPMetrics(reg, "/metrics", "/healthz")
	if err != nil {
		log.Error("failed to register http metrics", "error", err.Error())
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024,
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:      db,
		Catalog: catalogSvc,
		Search:  searchSvc,
		Rating:  ratingSvc,
		Poster:  posterSvc,
		Metrics: reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("failed to start server", "error", err.Error())
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("server_stopping")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("graceful shutdown failed", "error", err.Error())
		}
	}
}
