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

	"github.com/redis/go-redis/v9"

	"budget-tracker/internal/adapter/http"
	"budget-tracker/internal/adapter/postgres"
	"budget-tracker/internal/adapter/session"
	"budget-tracker/internal/adapter/usecase"
	"budget-tracker/internal/config"
	"budget-tracker/internal/db"
	"budget-tracker/internal/monitoring"
)

// main is the entry point of the budget tracker. It loads configuration,
// runs database migrations and the optional demo seed, wires repositories,
// use cases and the session store, then starts the HTTP server. On receiving
// a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data ready", slog.String("username", db.DemoHandle))
	}

	var store session.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err = rdb.Ping(ctx).Err(); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		store = session.NewRedisStore(rdb)
		logger.Info("sessions stored in redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		store = session.NewMemoryStore()
		logger.Warn("REDIS_ADDRESS not set, sessions are kept in memory")
	}

	accounts := usecase.NewAccountUseCase(postgres.NewAccountRepository(pool))
	campaigns := usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool))

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Accounts:       accounts,
		Campaigns:      campaigns,
		Sessions:       session.NewManager(store, cfg.Session, logger),
		Metrics:        monitoring.NewMetrics("budget", nil),
		Logger:         logger,
		AlertThreshold: cfg.Dashboard.AlertThreshold,
		Ping:           pool.Ping,
	})
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
