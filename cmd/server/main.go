package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teamsmith/hackops/internal/config"
	"github.com/teamsmith/hackops/internal/database"
	"github.com/teamsmith/hackops/internal/handler"
	"github.com/teamsmith/hackops/internal/jobs"
	"github.com/teamsmith/hackops/internal/middleware"
	"github.com/teamsmith/hackops/internal/repository"
	"github.com/teamsmith/hackops/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection with transient-failure retries
	var db database.Database = database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})
	db = database.NewRetrying(db, database.RetryConfig{
		Attempts: cfg.Retry.Attempts,
		Backoff:  cfg.Retry.Backoff,
		Logger:   logger,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	hackathonRepo := repository.NewHackathonRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	certificateRepo := repository.NewCertificateRepository(db)

	// Initialize services
	hackathonService := service.NewHackathonService(service.HackathonServiceConfig{
		HackathonRepo: hackathonRepo,
		Counter:       participantRepo,
	})

	participantService := service.NewParticipantService(service.ParticipantServiceConfig{
		ParticipantRepo: participantRepo,
		HackathonRepo:   hackathonRepo,
	})

	teamService := service.NewTeamService(service.TeamServiceConfig{
		HackathonRepo:   hackathonRepo,
		ParticipantRepo: participantRepo,
		TeamRepo:        teamRepo,
		Outbox:          notificationRepo,
	})

	dispatcher := service.NewDispatcher(service.DispatcherConfig{
		Store:        notificationRepo,
		Mailer:       &service.LogMailer{},
		BatchSize:    cfg.Dispatch.BatchSize,
		BatchDelay:   cfg.Dispatch.BatchDelay,
		BatchTimeout: cfg.Dispatch.BatchTimeout,
	})

	certificateService := service.NewCertificateService(service.CertificateServiceConfig{
		CertRepo:        certificateRepo,
		ParticipantRepo: participantRepo,
		HackathonRepo:   hackathonRepo,
	})

	// Background outbox drainer
	outboxDrainer := jobs.NewOutboxDrainer(dispatcher, cfg.Outbox.Interval)
	outboxDrainer.Start()
	defer outboxDrainer.Stop()

	// Initialize rate limiter for public registration routes
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100,
		Window: time.Minute,
		Burst:  20,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	hackathonHandler := handler.NewHackathonHandler(hackathonService)
	participantHandler := handler.NewParticipantHandler(participantService)
	teamHandler := handler.NewTeamHandler(teamService, dispatcher)
	certificateHandler := handler.NewCertificateHandler(certificateService)

	// Organizer routes require the admin token. An empty hash disables the
	// gate, which Validate only permits outside production.
	adminMiddleware := middleware.AdminAuth(cfg.Admin.TokenHash)
	if cfg.Admin.TokenHash == "" {
		slog.Warn("ADMIN_TOKEN_HASH not set, organizer routes are unprotected")
		adminMiddleware = func(next http.Handler) http.Handler { return next }
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return adminMiddleware(h)
	}

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Hackathon endpoints (reads public, mutations organizer-only)
	mux.HandleFunc("GET /v1/hackathons", hackathonHandler.ListHackathons)
	mux.HandleFunc("GET /v1/hackathons/{hackathonId}", hackathonHandler.GetHackathon)
	mux.Handle("POST /v1/hackathons", admin(hackathonHandler.CreateHackathon))
	mux.Handle("PATCH /v1/hackathons/{hackathonId}", admin(hackathonHandler.UpdateHackathon))
	mux.Handle("DELETE /v1/hackathons/{hackathonId}", admin(hackathonHandler.DeleteHackathon))

	// Participant endpoints (registration public, review organizer-only)
	mux.HandleFunc("POST /v1/hackathons/{hackathonId}/participants", participantHandler.RegisterParticipant)
	mux.Handle("GET /v1/hackathons/{hackathonId}/participants", admin(participantHandler.ListParticipants))
	mux.Handle("GET /v1/participants/{participantId}", admin(participantHandler.GetParticipant))
	mux.Handle("PATCH /v1/participants/{participantId}/review", admin(participantHandler.ReviewParticipant))
	mux.Handle("DELETE /v1/participants/{participantId}", admin(participantHandler.RemoveParticipant))

	// Team assignment endpoints
	mux.HandleFunc("GET /v1/hackathons/{hackathonId}/assignments", teamHandler.GetAssignment)
	mux.Handle("POST /v1/hackathons/{hackathonId}/assignments", admin(teamHandler.RunAssignment))
	mux.Handle("DELETE /v1/hackathons/{hackathonId}/assignments", admin(teamHandler.ClearAssignment))

	// Notification endpoints (organizer-only)
	mux.Handle("GET /v1/hackathons/{hackathonId}/notifications", admin(teamHandler.ListNotifications))
	mux.Handle("POST /v1/notifications/dispatch", admin(teamHandler.DispatchNotifications))

	// Certificate endpoints (verification public, issuing organizer-only)
	mux.HandleFunc("GET /v1/certificates/{serial}", certificateHandler.VerifyCertificate)
	mux.Handle("POST /v1/hackathons/{hackathonId}/certificates", admin(certificateHandler.IssueCertificates))
	mux.Handle("GET /v1/hackathons/{hackathonId}/certificates", admin(certificateHandler.ListCertificates))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
