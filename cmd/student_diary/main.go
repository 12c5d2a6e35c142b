package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"student_diary/internal/config"
	"student_diary/internal/handlers"
	"student_diary/internal/logger"
	"student_diary/internal/storage"
	"student_diary/internal/usecases"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal("couldnt load config: ", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.Storage)
	if err != nil {
		appLogger.Error("unable to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	opts := []usecases.Option{
		usecases.WithLogger(appLogger),
		usecases.WithSampleData(cfg.Diary.SeedSampleData),
		usecases.WithMoodWindow(cfg.Diary.MoodWindow),
		usecases.WithUpcomingLimit(cfg.Diary.UpcomingLimit),
	}

	var calendarStorage *storage.GoogleCalendarStorage
	if cfg.Google.CalendarEnabled {
		calendarStorage, err = storage.NewGoogleCalendarStorage(ctx, cfg.Google.CredentialsFile, cfg.Google.TokenFile, cfg.Google.CalendarID)
		if err != nil {
			appLogger.Warn("google calendar sync disabled", "error", err)
		} else {
			opts = append(opts, usecases.WithPublisher(storage.NewGuardedPublisher(calendarStorage, storage.GuardSettings{
				PerSecond:   cfg.Google.PublishRate,
				MaxFailures: cfg.Google.BreakerFailures,
				Cooldown:    cfg.Google.BreakerCooldown,
			})))
		}
	}

	diary := usecases.NewDiary(store, usecases.SystemClock{}, opts...)
	diary.Load(ctx)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handlers.NewRouter(handlers.NewSession(diary), calendarStorage),
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	appLogger.Info("student diary listening", "addr", cfg.Server.Addr, "backend", cfg.Storage.Backend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		appLogger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.StorageConfig) (usecases.DocumentStore, func(), error) {
	switch cfg.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to db: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("unable to ping db: %w", err)
		}

		store := storage.NewPostgresStorage(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		slog.Info("connected to db successfully")
		return store, pool.Close, nil

	case "sqlite":
		store, err := storage.NewSQLiteStorage(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		return storage.NewFileStorage(cfg.DataFile), func() {}, nil
	}
}
