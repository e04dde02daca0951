// Package app wires configuration, logging, services, the HTTP router and
// the server lifecycle together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jineuihong-coder/iso-findings/internal/config"
	apierrors "github.com/jineuihong-coder/iso-findings/internal/errors"
	"github.com/jineuihong-coder/iso-findings/internal/infrastructure"
	custommiddleware "github.com/jineuihong-coder/iso-findings/internal/middleware"
	"github.com/jineuihong-coder/iso-findings/internal/services"
	handlers "github.com/jineuihong-coder/iso-findings/internal/transport/http"
)

const (
	// Version identifies the running build.
	Version = "v1.0.0"
	// AppName is the human-readable service name.
	AppName = "Audit Findings Dashboard"
)

// BuildTime is set at compile time via -ldflags when building releases.
var BuildTime = time.Now().Format(time.RFC3339)

// Application is the main application container.
type Application struct {
	Config          *config.Config
	Router          *chi.Mux
	Server          *http.Server
	FindingsService *services.FindingsService
	Logger          *slog.Logger
}

// NewApplication creates a new application instance with all services wired.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("name", AppName),
		slog.String("version", Version))

	app := &Application{
		Config:          cfg,
		Logger:          logger,
		FindingsService: services.NewFindingsService(logger),
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter configures the HTTP router with all routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	// Ordering: RequestID → RealIP → Metrics → Logger → Recoverer → the rest.
	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.Metrics)
	r.Use(custommiddleware.StructuredLogger(a.Logger))
	r.Use(custommiddleware.Recoverer(a.Logger))
	r.Use(custommiddleware.SecurityHeaders)

	if a.Config.Security.RateLimit.Enabled {
		r.Use(custommiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(custommiddleware.Timeout(a.Config.Server.ReadTimeout, a.Logger))

		healthHandler := handlers.NewHealthHandler(Version, BuildTime, a.Logger)
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/live", healthHandler.LivenessCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
		r.Get("/version", healthHandler.Version)

		errorHandler := apierrors.NewErrorHandler(a.Logger)

		findingsHandler := handlers.NewFindingsHandler(a.FindingsService, a.Logger, errorHandler)
		r.Mount("/findings", findingsHandler.Routes())

		workbookHandler := handlers.NewWorkbookHandler(a.FindingsService, a.Logger, errorHandler, a.Config.Upload.MaxSizeBytes)
		r.Mount("/workbook", workbookHandler.Routes())
	})

	// Prometheus endpoint stays outside the API timeout group.
	r.Handle("/metrics", promhttp.Handler())

	a.Router = r
}

// createServer creates the HTTP server.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Start starts the HTTP server in the background.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) {
	a.Logger.InfoContext(ctx, "starting server",
		slog.String("name", AppName),
		slog.Int("port", a.Config.Server.Port))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.ErrorContext(ctx, "server error", slog.String("error", err.Error()))
			cancel()
		}
	}()
}

// Stop gracefully stops the application.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.Logger.InfoContext(ctx, "application shutdown complete")
	return nil
}

// Run runs the application until interrupted.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	a.Start(ctx, cancel)

	select {
	case <-sigChan:
		a.Logger.InfoContext(ctx, "received interrupt signal")
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
