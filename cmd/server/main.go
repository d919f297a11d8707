package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"company_analyzer/internal/app/di"
	"company_analyzer/internal/app/router"
	"company_analyzer/internal/feature/companyanalysis/transport/handler"
	"company_analyzer/internal/feature/companyanalysis/usecase"
	"company_analyzer/internal/platform/config"
	platformhandler "company_analyzer/internal/platform/http/handler"
	jwtmw "company_analyzer/internal/platform/jwt"
	"company_analyzer/internal/platform/logger"
	"company_analyzer/internal/platform/metrics"
	infraredis "company_analyzer/internal/platform/redis"
	"company_analyzer/internal/shared/ratelimiter"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	// 補完APIの応答待ちを含むため長めに取る
	writeTimeout    = 150 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 30 * time.Second
)

func main() {
	// .env はローカル開発用（既存の環境変数は上書きしない）
	if err := config.LoadDotEnv(); err != nil {
		_, _ = os.Stderr.WriteString("failed to load .env: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Init(os.Stdout, cfg.LogLevel)

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis（未設定または接続できなければメモリで動かす）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword); err != nil {
		if errors.Is(err, infraredis.ErrNotConfigured) {
			slog.Info("Redis not configured. Keeping session history in memory.")
		} else {
			slog.Warn("Redis unavailable. Keeping session history in memory.", "error", err)
		}
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Metrics
	metricsManager := metrics.NewManager()

	// Repository / Client
	historyRepo := di.NewHistoryRepository(rdb, cfg.SessionTTL)
	completionClient := di.NewCompletionClient(cfg, rdb)

	// Usecase
	analysisUC := usecase.NewAnalysisUsecase(completionClient, historyRepo, metricsManager, cfg.HistoryLimit)

	// Handler
	var checks []platformhandler.Check
	if rdb != nil {
		checks = append(checks, platformhandler.Check{
			Name: "redis",
			Func: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	// ルータ生成
	r := router.NewRouter(router.Deps{
		Page:     handler.NewPageHandler(analysisUC),
		API:      handler.NewAnalysisHandler(analysisUC),
		Health:   platformhandler.NewHealthHandler(checks...),
		Metrics:  metricsManager,
		Sessions: di.NewSessionGenerator(cfg),
		Cookie: jwtmw.CookieOptions{
			Name:   jwtmw.DefaultCookieName,
			MaxAge: int(cfg.SessionTTL.Seconds()),
			Secure: cfg.CookieSecure,
		},
		Limiter: ratelimiter.NewRateLimiter(cfg.AnalyzeRPM),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	go func() {
		slog.Info("starting HTTP server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
