package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/qlf-seminar/backend/internal/config"
	"github.com/qlf-seminar/backend/internal/handler"
	"github.com/qlf-seminar/backend/internal/logging"
	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/qlf-seminar/backend/internal/service"
	"github.com/qlf-seminar/backend/internal/storage"
	"github.com/qlf-seminar/backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL, cfg.DBConnectTimeout)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logging.Fatal("failed to configure photo storage", "error", err)
	}

	validate := validation.New()

	registrationRepo := repository.NewPgRegistrationRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)
	contestantRepo := repository.NewPgContestantRepository(pool)
	panelistRepo := repository.NewPgPanelistRepository(pool)

	registrationService := service.NewRegistrationService(registrationRepo, validate)
	messageService := service.NewMessageService(messageRepo, validate)
	contestantService := service.NewContestantService(contestantRepo, validate)
	panelistService := service.NewPanelistService(panelistRepo, store, validate)
	dashboardService := service.NewDashboardService(registrationRepo, messageRepo, contestantRepo, panelistRepo, cfg.EventDate)

	h := handler.New(pool, cfg.CORSOrigin)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	messageHandler := handler.NewMessageHandler(messageService)
	contestantHandler := handler.NewContestantHandler(contestantService)
	panelistHandler := handler.NewPanelistHandler(panelistService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Public form posts share one per-IP budget.
	formLimit := handler.NewRateLimiter(ctx, cfg.RateLimit, cfg.TrustedProxies).Middleware

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/test", h.Test)
	mux.HandleFunc("GET /api/health", h.Health)

	mux.Handle("POST /api/register", formLimit(http.HandlerFunc(registrationHandler.Register)))
	mux.HandleFunc("GET /api/registrations", registrationHandler.List)

	mux.Handle("POST /api/messages", formLimit(http.HandlerFunc(messageHandler.Submit)))
	mux.HandleFunc("GET /api/messages", messageHandler.List)
	mux.HandleFunc("PATCH /api/messages/{id}/read", messageHandler.MarkRead)
	mux.HandleFunc("POST /api/messages/{id}/reply", messageHandler.Reply)
	mux.HandleFunc("DELETE /api/messages/{id}", messageHandler.Delete)

	mux.HandleFunc("GET /api/contestants", contestantHandler.List)
	mux.HandleFunc("POST /api/contestants", contestantHandler.Create)
	mux.HandleFunc("PUT /api/contestants/{id}", contestantHandler.Update)
	mux.HandleFunc("DELETE /api/contestants/{id}", contestantHandler.Delete)

	mux.HandleFunc("GET /api/panelists", panelistHandler.List)
	mux.HandleFunc("POST /api/panelists", panelistHandler.Create)
	mux.HandleFunc("DELETE /api/panelists/{id}", panelistHandler.Delete)

	mux.HandleFunc("GET /api/dashboard", dashboardHandler.Get)

	// Uploaded photos are served from disk only for the local backend.
	if local, ok := store.(*storage.LocalStorage); ok && strings.HasPrefix(local.URLPrefix(), "/") {
		prefix := strings.TrimRight(local.URLPrefix(), "/") + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(local.BaseDir()))))
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "cors_origin", cfg.CORSOrigin, "storage", cfg.Storage.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
