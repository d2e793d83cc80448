// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the guildboard catalog server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the configured catalog source (file, http, postgres or redis).
//  4. Run the first catalog load; a failure is painted, not fatal.
//  5. Watch the catalog file when enabled.
//  6. Wire HTTP handlers and the catalog page.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/guildboard/internal/api"
	"github.com/taibuivan/guildboard/internal/catalog"
	"github.com/taibuivan/guildboard/internal/platform/config"
	"github.com/taibuivan/guildboard/internal/platform/constants"
	"github.com/taibuivan/guildboard/internal/platform/migration"
	pgstore "github.com/taibuivan/guildboard/internal/platform/postgres"
	redisstore "github.com/taibuivan/guildboard/internal/platform/redis"
	"github.com/taibuivan/guildboard/internal/platform/sec"
	"github.com/taibuivan/guildboard/internal/render"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("catalog_source", cfg.CatalogSource),
	)

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Catalog Source ─────────────────────────────────────────────────
	health := api.HealthDependencies{}
	var source catalog.Source

	switch cfg.CatalogSource {
	case config.SourceHTTP:
		source = catalog.NewHTTPSource(cfg.CatalogURL, cfg.LoadTimeout)

	case config.SourcePostgres:
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		source = catalog.NewPostgresSource(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }

	case config.SourceRedis:
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		source = catalog.NewRedisSource(rdb, cfg.CatalogRedisKey)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }

	default:
		source = catalog.NewFileSource(cfg.CatalogFile)
	}

	// ── 4. First Load ─────────────────────────────────────────────────────
	store := catalog.NewStore()
	service := catalog.NewService(source, store, cfg.LoadTimeout, log)

	// The failure is already logged and recorded in the store; the page shows it.
	_ = service.Load(startupCtx)
	health.CatalogStatus = service.Status

	// ── 5. File Watcher ───────────────────────────────────────────────────
	if cfg.CatalogWatch {
		watcher, err := catalog.NewWatcher(cfg.CatalogFile, service, catalog.DefaultDebounce, log)
		must(log, err, "create catalog watcher")
		must(log, watcher.Start(rootCtx), "start catalog watcher")
		defer func() {
			if cerr := watcher.Close(); cerr != nil {
				log.Error("watcher_close_failed", slog.Any("error", cerr))
			}
		}()
	}

	// ── 6. Handlers ───────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService("", cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize token service")
	if !cfg.ReloadEnabled() {
		log.Warn("catalog_reload_disabled", slog.String("reason", "JWT_PUBLIC_KEY_PATH not set"))
	}

	page, err := render.NewHTML()
	must(log, err, "parse page template")

	liveness, readiness := api.NewHealthHandlers(health, log)
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalog.NewHandler(service, tokens),
		Page:      render.NewPageHandler(service, page),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
	}

	log.Info("server_stopped")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Only used for startup wiring.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
