package main

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

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/openaudit/internal/analysis"
	analysisStore "github.com/MrJamesThe3rd/openaudit/internal/analysis/store"
	"github.com/MrJamesThe3rd/openaudit/internal/analytics"
	analyticsStore "github.com/MrJamesThe3rd/openaudit/internal/analytics/store"
	"github.com/MrJamesThe3rd/openaudit/internal/config"
	"github.com/MrJamesThe3rd/openaudit/internal/database"
	"github.com/MrJamesThe3rd/openaudit/internal/export"
	apiHttp "github.com/MrJamesThe3rd/openaudit/internal/http"
	analyticsHandler "github.com/MrJamesThe3rd/openaudit/internal/http/analytics"
	lguHandler "github.com/MrJamesThe3rd/openaudit/internal/http/lgu"
	llmHandler "github.com/MrJamesThe3rd/openaudit/internal/http/llm"
	topicHandler "github.com/MrJamesThe3rd/openaudit/internal/http/topic"
	txHandler "github.com/MrJamesThe3rd/openaudit/internal/http/transaction"
	"github.com/MrJamesThe3rd/openaudit/internal/lgu"
	lguStore "github.com/MrJamesThe3rd/openaudit/internal/lgu/store"
	"github.com/MrJamesThe3rd/openaudit/internal/topic"
	topicStore "github.com/MrJamesThe3rd/openaudit/internal/topic/store"
	"github.com/MrJamesThe3rd/openaudit/internal/transaction"
	txStore "github.com/MrJamesThe3rd/openaudit/internal/transaction/store"
)

const shutdownTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.ConnectionString()); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactions := txStore.New(db)

	var (
		transactionService = transaction.NewService(transactions)
		lguService         = lgu.NewService(lguStore.New(db), transactions)
		analyticsService   = analytics.NewService(analyticsStore.New(db))
		topicService       = topic.NewService(topicStore.New(db))
		analysisService    = analysis.NewService(
			analysisStore.New(db), analysis.PlaceholderProvider{}, cfg.HasProviderCredentials(),
		)
		exportService = export.NewService(analyticsService)
	)

	router := apiHttp.New(apiHttp.Options{
		AppName:     cfg.App.Name,
		CORSOrigins: cfg.CORS.Origins,
	}, apiHttp.Handlers{
		LGUs:         lguHandler.NewHandler(lguService),
		Transactions: txHandler.NewHandler(transactionService, analyticsService),
		Analytics:    analyticsHandler.NewHandler(analyticsService, exportService),
		Topics:       topicHandler.NewHandler(topicService),
		LLM:          llmHandler.NewHandler(analysisService),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           http.TimeoutHandler(router, cfg.Server.Timeout, "request timed out"),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})

	go func() {
		defer close(done)

		<-ctx.Done()
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr, "llm_configured", cfg.HasProviderCredentials())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("server stopped")
}
