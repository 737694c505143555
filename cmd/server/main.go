package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/realestate/backend/internal/application/mediator"
	"github.com/realestate/backend/internal/application/realestate"
	"github.com/realestate/backend/internal/infrastructure/cache"
	"github.com/realestate/backend/internal/infrastructure/config"
	"github.com/realestate/backend/internal/infrastructure/imaging"
	"github.com/realestate/backend/internal/infrastructure/logger"
	"github.com/realestate/backend/internal/infrastructure/migration"
	"github.com/realestate/backend/internal/infrastructure/persistence"
	"github.com/realestate/backend/internal/infrastructure/telemetry"
	"github.com/realestate/backend/internal/interfaces/http/handler"
	"github.com/realestate/backend/internal/interfaces/http/middleware"
	"github.com/realestate/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Real Estate API
//	@version		1.0
//	@description	Owners, properties, property images and sale traces.

//	@BasePath	/api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(logger.FromAppConfig(cfg.Log))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()

	// Export logs to the collector alongside the local output
	logsProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsFromAppConfig(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = telemetry.BridgeLogger(log, logsProvider)

	log.Info("Starting Real Estate Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database_driver", cfg.Database.Driver),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.FromAppConfig(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsFromAppConfig(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}

	// Initialize database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Database.LogLevel),
		logger.WithSlowThreshold(cfg.Database.SlowQueryThresh))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := prepareSchema(db, cfg.Database, log); err != nil {
		log.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         tracerProvider.IsEnabled() && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Database.SlowQueryThresh,
		DBSystem:        dbSystem(cfg.Database.Driver),
		TracerProvider:  tracerProvider.Provider(),
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if meterProvider.IsEnabled() {
		dbMetrics, err := telemetry.RegisterDBMetrics(ctx, db.DB, meterProvider.Meter("db.client"),
			telemetry.DBMetricsFromAppConfig(cfg.Database, cfg.Telemetry), log)
		if err != nil {
			log.Fatal("Failed to register database metrics", zap.Error(err))
		}
		defer dbMetrics.Stop()
	}

	// Image cache: redis when enabled, in-memory otherwise
	imageCache, err := cache.NewImageCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(true),
	).CreateCache()
	if err != nil {
		log.Fatal("Failed to initialize image cache", zap.Error(err))
	}
	defer func() {
		if err := imageCache.Close(); err != nil {
			log.Error("Error closing image cache", zap.Error(err))
		}
	}()

	// Request pipeline
	behaviors := []mediator.Behavior{mediator.LoggingBehavior(log)}
	if tracerProvider.IsEnabled() {
		behaviors = append(behaviors, mediator.TracingBehavior(tracerProvider.Tracer(telemetry.TracerName)))
	}
	if meterProvider.IsEnabled() {
		metricsBehavior, err := mediator.MetricsBehavior(meterProvider.Meter(telemetry.TracerName))
		if err != nil {
			log.Fatal("Failed to create request metrics", zap.Error(err))
		}
		behaviors = append(behaviors, metricsBehavior)
	}

	m := mediator.New(log, behaviors...)
	if err := realestate.RegisterHandlers(m, realestate.Dependencies{
		Owners:     persistence.NewGormOwnerRepository(db.DB),
		Properties: persistence.NewGormPropertyRepository(db.DB),
		Images:     persistence.NewGormPropertyImageRepository(db.DB),
		Traces:     persistence.NewGormPropertyTraceRepository(db.DB),
		Normalizer: imaging.NewNormalizer(log),
		ImageCache: imageCache,
		Logger:     log,
	}); err != nil {
		log.Fatal("Failed to register handlers", zap.Error(err))
	}
	m.Seal()
	log.Debug("Handlers registered", zap.Strings("requests", m.Registered()))

	// HTTP engine
	middleware.SetupValidator()

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Stop()
	}

	engineCfg := router.EngineConfig{
		Logger:      log,
		HTTP:        cfg.HTTP,
		ServiceName: cfg.Telemetry.ServiceName,
		RateLimiter: limiter,
	}
	if tracerProvider.IsEnabled() {
		engineCfg.TracerProvider = tracerProvider.Provider()
	}
	engine, err := router.NewEngine(engineCfg)
	if err != nil {
		log.Fatal("Failed to create HTTP engine", zap.Error(err))
	}

	health := handler.NewHealthHandler(log).AddCheck("database", db.Ping)
	if pinger, ok := imageCache.(interface{ Ping(context.Context) error }); ok {
		health.AddCheck("redis", pinger.Ping)
	}
	engine.GET("/health", health.Health)

	if cfg.HTTP.SwaggerEnabled {
		allowed, err := middleware.ParseAllowList(cfg.HTTP.SwaggerAllowedIPs)
		if err != nil {
			log.Fatal("Invalid swagger allow list", zap.Error(err))
		}
		router.RegisterSwagger(engine, allowed)
	}

	router.RegisterAPI(router.NewRouter(engine), router.Handlers{
		Owners:     handler.NewOwnerHandler(m, log),
		Properties: handler.NewPropertyHandler(m, log),
		Images:     handler.NewImageHandler(m, log),
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := logsProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// prepareSchema creates the sqlite schema from the models, or applies the
// embedded migrations to postgres when auto_migrate is set
func prepareSchema(db *persistence.Database, cfg config.DatabaseConfig, log *zap.Logger) error {
	if cfg.Driver == config.DriverSQLite {
		return db.AutoMigrate()
	}
	if !cfg.AutoMigrate {
		log.Info("Schema migrations are applied with cmd/migrate")
		return nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	// Closing the migrator would also close the shared pool
	migrator, err := migration.New(sqlDB, "", log)
	if err != nil {
		return err
	}
	return migrator.Up()
}

func dbSystem(driver string) string {
	if driver == config.DriverSQLite {
		return "sqlite"
	}
	return "postgresql"
}
