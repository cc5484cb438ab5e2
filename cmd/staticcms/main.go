// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the staticcms API server.
// It loads configuration, connects to services, starts the build worker,
// sets up routing and serves HTTP with graceful shutdown support.
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

	"staticcms/internal/build"
	"staticcms/internal/cache"
	"staticcms/internal/config"
	"staticcms/internal/database"
	"staticcms/internal/handlers"
	"staticcms/internal/router"
	"staticcms/internal/storage"
	"staticcms/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"public_url", cfg.PublicURL,
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the settings row and a welcome page (no-op if data exists).
	if err := database.Seed(db); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Valkey backs both the response cache and the build queue.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Migrations may have changed stored shapes; start from a cold cache.
	responseCache := cache.NewResponseCache(valkeyClient, cfg.CacheTTL)
	responseCache.InvalidateAll(context.Background())
	buildQueue := build.NewQueue(valkeyClient)

	// Upload storage: S3-compatible bucket when configured, local disk otherwise.
	var (
		files     storage.Store
		uploadDir string
	)
	if cfg.UseS3() {
		s3, err := storage.NewS3(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		files = s3
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		disk, err := storage.NewDisk(cfg.UploadDir, cfg.PublicURL)
		if err != nil {
			slog.Error("failed to initialize upload directory", "error", err)
			os.Exit(1)
		}
		files = disk
		uploadDir = disk.Dir()
		slog.Info("disk storage ready", "dir", uploadDir)
	}

	// The build worker runs the configured site generator, or only logs
	// requests when none is configured.
	var runner build.Runner = build.LogRunner
	if cfg.BuildCommand != "" {
		cmd, err := build.NewCommandRunner(cfg.BuildCommand, cfg.BuildDir)
		if err != nil {
			slog.Error("invalid build command", "error", err)
			os.Exit(1)
		}
		runner = cmd
	} else {
		slog.Warn("BUILD_COMMAND not set, build requests will only be logged")
	}
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		build.NewWorker(buildQueue, runner, 0).Run(workerCtx)
	}()

	api := handlers.NewAPI(handlers.Deps{
		Pages:     store.NewPageStore(db),
		Menus:     store.NewMenuStore(db),
		Settings:  store.NewSettingsStore(db),
		Uploads:   store.NewUploadStore(db),
		Dashboard: store.NewDashboardStore(db),
		Activity:  store.NewActivityStore(db),
		Storage:   files,
		Builds:    buildQueue,
		Cache:     responseCache,
	})

	r := router.New(api, router.Options{
		CORSOrigins: cfg.CORSOrigins,
		UploadDir:   uploadDir,
		Checks: map[string]router.Check{
			"database": db.PingContext,
			"valkey": func(ctx context.Context) error {
				return valkeyClient.Ping(ctx).Err()
			},
		},
	})

	// ReadTimeout leaves room for 20 MB uploads on slow links.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	// A running build finishes or is cancelled with the worker context.
	stopWorker()
	select {
	case <-workerDone:
	case <-ctx.Done():
		slog.Warn("build worker did not stop in time")
	}

	slog.Info("server stopped gracefully")
}
