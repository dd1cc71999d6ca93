package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/garrettladley/swimlight/internal/config"
	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/db"
	"github.com/garrettladley/swimlight/internal/heartrate"
	"github.com/garrettladley/swimlight/internal/paths"
	"github.com/garrettladley/swimlight/internal/provider"
	xredis "github.com/garrettladley/swimlight/internal/redis"
	"github.com/garrettladley/swimlight/internal/report"
	"github.com/garrettladley/swimlight/internal/repository"
	"github.com/garrettladley/swimlight/internal/storage"
	"github.com/garrettladley/swimlight/internal/xslog"
)

// app is everything a command needs, opened from the environment.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	bucketer daterange.Bucketer
	repo     *repository.Repository
	sqlDB    *sql.DB // nil for postgres
	service  *report.Service
	closers  []func() error
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

// openApp reads the config, opens the store and wires the report service.
// Logs go to the app log file so they never draw over the TUI.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	a := &app{cfg: cfg, bucketer: daterange.New(cfg.Location())}

	logWriter, err := openLog()
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, logWriter.Close)
	a.logger = xslog.NewLogger(logWriter, cfg.LogLevel)
	slog.SetDefault(a.logger)

	pinger, err := a.openStore(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	cache, err := a.openCache(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	store := provider.NewStore(a.repo, pinger, a.bucketer, a.logger)
	retrying := provider.NewRetrying(store, provider.RetryConfig{
		Attempts: cfg.FetchAttempts,
		Delay:    provider.DefaultRetryConfig().Delay,
		MaxDelay: provider.DefaultRetryConfig().MaxDelay,
		Timeout:  cfg.FetchTimeout,
	}, a.logger)

	a.service = report.NewService(report.Config{
		Provider:     retrying,
		Classifier:   heartrate.NewClassifier(),
		Bucketer:     a.bucketer,
		Cache:        cache,
		MaxHeartRate: cfg.MaxHeartRate,
		Logger:       a.logger,
	})

	a.logger.InfoContext(ctx, "swimlight started",
		xslog.Version(),
		slog.String("source", string(cfg.Source)),
		slog.String("cache", string(cfg.Cache)),
		xslog.MaxHeartRate(cfg.MaxHeartRate),
	)
	return a, nil
}

func openLog() (io.WriteCloser, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, err
	}
	path, err := paths.Log()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func (a *app) openStore(ctx context.Context) (provider.Pinger, error) {
	switch a.cfg.Source {
	case config.SourcePostgres:
		pool, repo, err := db.OpenPostgres(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		a.repo = repo
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		return provider.PingFunc(pool.Ping), nil
	default:
		path := a.cfg.DBPath
		if path == "" {
			var err error
			if path, err = paths.DB(); err != nil {
				return nil, err
			}
		}
		sqlDB, repo, err := db.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.logger.DebugContext(ctx, "opened sqlite store", xslog.Path(path))
		a.repo = repo
		a.sqlDB = sqlDB
		a.closers = append(a.closers, sqlDB.Close)
		return provider.PingFunc(sqlDB.PingContext), nil
	}
}

func (a *app) openCache(ctx context.Context) (storage.DateCache, error) {
	switch a.cfg.Cache {
	case config.CacheRedis:
		client, err := xredis.New(ctx, xredis.Config{URL: a.cfg.RedisURL})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis client: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		return storage.NewRedisCache(storage.RedisConfig{Client: client}, a.bucketer), nil
	case config.CacheMemory:
		return storage.NewMemoryCache(), nil
	default:
		path := a.cfg.CachePath
		if path == "" {
			var err error
			if path, err = paths.DateCache(); err != nil {
				return nil, err
			}
		}
		return storage.NewFileCache(path, a.bucketer), nil
	}
}
