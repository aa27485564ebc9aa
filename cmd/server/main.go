package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/config"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/database"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/handler"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/jobs"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/middleware"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/repository"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/service"
	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/validator"
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

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
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
	memberRepo := repository.NewMemberRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	// Initialize request validator
	v := validator.New()

	// Initialize event hub for real-time updates
	eventHub := service.NewEventHub()
	defer eventHub.Close()

	// Initialize class catalog and services
	catalog := service.NewClassCatalog(service.DefaultClasses)

	memberService := service.NewMemberService(service.MemberServiceConfig{
		MemberRepo: memberRepo,
		PartyRepo:  partyRepo,
		Catalog:    catalog,
		Events:     eventHub,
	})
	partyService := service.NewPartyService(service.PartyServiceConfig{
		PartyRepo:  partyRepo,
		MemberRepo: memberRepo,
		GroupRepo:  groupRepo,
		Events:     eventHub,
	})
	groupService := service.NewGroupService(service.GroupServiceConfig{
		GroupRepo: groupRepo,
		PartyRepo: partyRepo,
		Events:    eventHub,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize roster integrity auditor
	if cfg.Jobs.AuditorEnabled {
		auditor := jobs.NewIntegrityAuditor(partyRepo, memberRepo, cfg.Jobs.AuditorInterval)
		auditor.Start()
		defer auditor.Stop()
	}

	// Initialize handlers
	memberHandler := handler.NewMemberHandler(memberService, catalog, v)
	partyHandler := handler.NewPartyHandler(partyService, v)
	groupHandler := handler.NewGroupHandler(groupService, v)
	eventsHandler := handler.NewEventsHandler(eventHub)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Member endpoints
	mux.HandleFunc("POST /v1/members", memberHandler.Create)
	mux.HandleFunc("GET /v1/members", memberHandler.List)
	mux.HandleFunc("GET /v1/members/unassigned", memberHandler.Unassigned)
	mux.HandleFunc("GET /v1/members/{memberId}", memberHandler.Get)
	mux.HandleFunc("PATCH /v1/members/{memberId}", memberHandler.Update)
	mux.HandleFunc("DELETE /v1/members/{memberId}", memberHandler.Delete)

	// Class catalog
	mux.HandleFunc("GET /v1/classes", memberHandler.Classes)

	// Party endpoints
	mux.HandleFunc("POST /v1/parties", partyHandler.Create)
	mux.HandleFunc("GET /v1/parties", partyHandler.List)
	mux.HandleFunc("GET /v1/parties/{partyId}", partyHandler.Get)
	mux.HandleFunc("PATCH /v1/parties/{partyId}", partyHandler.Update)
	mux.HandleFunc("DELETE /v1/parties/{partyId}", partyHandler.Delete)

	// Slot mutations
	mux.HandleFunc("POST /v1/parties/assign", partyHandler.Assign)
	mux.HandleFunc("POST /v1/parties/remove", partyHandler.Remove)
	mux.HandleFunc("POST /v1/parties/swap", partyHandler.Swap)
	mux.HandleFunc("POST /v1/parties/clear", partyHandler.Clear)

	// Group endpoints
	mux.HandleFunc("POST /v1/groups", groupHandler.Create)
	mux.HandleFunc("GET /v1/groups", groupHandler.List)
	mux.HandleFunc("GET /v1/groups/{groupId}", groupHandler.Get)
	mux.HandleFunc("PATCH /v1/groups/{groupId}", groupHandler.Update)
	mux.HandleFunc("DELETE /v1/groups/{groupId}", groupHandler.Delete)

	// Server-sent events stream
	mux.HandleFunc("GET /v1/events/stream", eventsHandler.Stream)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
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
