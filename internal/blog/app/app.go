package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/ngxblog/internal/blog/http"
	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store/drivers/postgres"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/ngxblog/pkg/blobx"
	"github.com/aussiebroadwan/ngxblog/pkg/cryptox"
	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
	"github.com/aussiebroadwan/ngxblog/pkg/mailx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// BuildVersion is overridden at build time via ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the blog service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	hasher   cryptox.Hasher
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	registry *prometheus.Registry
	metrics  *service.Metrics

	// Services
	userService         *service.UserService
	resetService        *service.ResetService
	documentService     *service.DocumentService
	uploadService       *service.UploadService
	dispatcher          *service.Dispatcher
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	cfg.Normalize()

	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()

	if err := app.initSecurity(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

func newLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: "blog-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// Migrate applies database migrations and exits.
func Migrate(cfg Config) error {
	cfg.Normalize()
	logger := newLogger(cfg)

	db, err := openStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	logger.Info("database migrations applied successfully", "driver", cfg.DBDriver)
	return nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("blog service starting", "port", app.cfg.Port, "version", BuildVersion, "driver", app.cfg.DBDriver)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down blog service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	// Reset emails queued by the last requests still go out.
	if err := app.dispatcher.Wait(ctx); err != nil {
		app.logger.Warn("pending emails abandoned", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("blog service stopped")
	return nil
}

// initSecurity builds the password hasher and the session token pair.
func (app *Application) initSecurity() error {
	// Stored users carry only salt and hash, so the work factor is fixed.
	app.hasher = cryptox.DefaultHasher

	secret := app.cfg.JWTSecret
	if secret == "" {
		// Only reachable in dev; Validate rejects it elsewhere.
		secret = cryptox.MustGenerateToken(cryptox.TokenSize256)
		app.logger.Warn("JWT_SECRET not set, using an ephemeral secret; sessions will not survive a restart")
	}

	var err error
	app.signer, app.verifier, err = jwtx.NewHS256([]byte(secret), jwtx.DefaultSessionTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize session tokens: %w", err)
	}
	return nil
}

// initDatabase opens the configured store and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := openStore(ctx, app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DBDriver)
	return nil
}

func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DBDriver {
	case DriverPostgres:
		db, err := postgres.NewStore(ctx, cfg.DatabaseURL, postgres.Options{MaxConns: int32(cfg.DBMaxConns)})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return db, nil
	default:
		db, err := sqlite.NewStore(cfg.DatabaseFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return db, nil
	}
}

// initServices initializes all business logic services
func (app *Application) initServices(ctx context.Context) error {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = service.NewMetrics(app.registry)

	sender, err := app.newMailSender()
	if err != nil {
		return err
	}
	app.dispatcher = service.NewDispatcher(sender, app.logger, app.cfg.MailTimeout, app.metrics)

	schemas, err := service.LoadSchemas()
	if err != nil {
		return fmt.Errorf("failed to load document schemas: %w", err)
	}

	app.userService = &service.UserService{
		Store:   app.db,
		Hasher:  app.hasher,
		Signer:  app.signer,
		Policy:  service.DefaultPasswordPolicy,
		Metrics: app.metrics,
	}
	app.resetService = &service.ResetService{
		Store:     app.db,
		Hasher:    app.hasher,
		Mail:      app.dispatcher,
		Metrics:   app.metrics,
		AppDomain: app.cfg.AppDomain,
		TTL:       app.cfg.ResetTokenTTL,
	}
	app.documentService = &service.DocumentService{
		Store:   app.db,
		Schemas: schemas,
	}

	app.uploadService = &service.UploadService{}
	if app.cfg.S3.Enabled() {
		blobs, err := blobx.NewS3(ctx, app.cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		app.uploadService.Blobs = blobs
		app.logger.Info("object storage enabled", "bucket", app.cfg.S3.Bucket)
	} else {
		app.logger.Warn("S3_BUCKET not set, uploads are disabled")
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.resetService,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	return nil
}

func (app *Application) newMailSender() (mailx.Sender, error) {
	if app.cfg.SMTP.Host == "" {
		app.logger.Warn("SMTP_HOST not set, emails will be logged instead of sent")
		return mailx.LogSender{Logger: app.logger}, nil
	}

	sender, err := mailx.NewSMTPSender(app.cfg.SMTP)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail sender: %w", err)
	}
	return sender, nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.ResetService = app.resetService
	router.DocumentService = app.documentService
	router.UploadService = app.uploadService
	router.StaticDir = app.cfg.StaticDir
	router.Registry = app.registry
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Handler exposes the configured router, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}
