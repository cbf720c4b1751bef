package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ciscoecosystem/sync-jira-actions/internal/config"
	"github.com/ciscoecosystem/sync-jira-actions/internal/gh"
	"github.com/ciscoecosystem/sync-jira-actions/internal/httpserver/handlers/webhook"
	"github.com/ciscoecosystem/sync-jira-actions/internal/httpserver/middlewares"
	"github.com/ciscoecosystem/sync-jira-actions/internal/jira"
	"github.com/ciscoecosystem/sync-jira-actions/internal/usecase/mirror"
	"github.com/ciscoecosystem/sync-jira-actions/internal/usecase/prsync"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.Load()

	log := setupLogger(cfg.Env)

	log.Info("starting application",
		slog.String("env", cfg.Env),
		slog.String("repository", cfg.GitHubConfig.Repository),
		slog.String("jira_project", cfg.JiraConfig.Project))

	ghClient := gh.New(cfg.GitHubConfig.Token)
	jiraClient := jira.New(cfg.JiraConfig.URL, cfg.JiraConfig.User, cfg.JiraConfig.Secret, cfg.JiraConfig.Token())

	mirrorService := mirror.New(log, cfg, jiraClient)
	prSyncService := prsync.New(log, cfg, ghClient, jiraClient, mirrorService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.With(middlewares.GitHubSignatureMiddleware(cfg.HTTPServerConfig.WebhookSecret)).
		Post("/webhook", webhook.New(log, cfg, prSyncService, mirrorService, ghClient))

	addr := cfg.HTTPServerConfig.Host + ":" + strconv.Itoa(cfg.HTTPServerConfig.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTPServerConfig.Timeout,
		WriteTimeout:      cfg.HTTPServerConfig.Timeout,
		IdleTimeout:       cfg.HTTPServerConfig.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go runSweeper(ctx, log, prSyncService, cfg.SyncConfig.SweepInterval)

	go func() {
		log.Info("starting server", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	gracefulShutdown(ctx, srv, log)
}

// runSweeper periodically mirrors open pull requests that webhook deliveries
// may have missed.
func runSweeper(ctx context.Context, log *slog.Logger, prSyncService *prsync.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := prSyncService.SyncRemainPRs(ctx); err != nil {
				log.Error("sweep failed", slog.Any("err", err))
			}
		}
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func gracefulShutdown(ctx context.Context, srv *http.Server, log *slog.Logger) {
	<-ctx.Done()

	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", slog.Any("err", err))
		return
	}

	log.Info("server exited gracefully")
}
