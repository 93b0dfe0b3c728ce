package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/klauspost/compress/gzhttp"
	"github.com/spf13/cobra"

	"catalogodeleite/internal/config"
	"catalogodeleite/internal/domain/catalogs/produto"
	v1 "catalogodeleite/internal/infrastructure/http/v1"
	"catalogodeleite/internal/infrastructure/http/v1/handlers"
	"catalogodeleite/internal/infrastructure/storage/postgres"
	"catalogodeleite/internal/infrastructure/storage/postgres/catalog_repo"
	"catalogodeleite/pkg/logger"
	"catalogodeleite/pkg/metrics"
	"catalogodeleite/pkg/tracing"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfigAndLogger(opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, log)
		},
	}
}

func poolConfig(cfg config.DatabaseConfig, appName string) postgres.PoolConfig {
	pc := postgres.DefaultPoolConfig(cfg.URL)
	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ApplicationName = appName
	return pc
}

func runServer(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	log.Infow("starting catalogodeleite server", "version", version, "env", cfg.App.Env)

	// --- Tracing ---
	tp, err := tracing.NewProvider(ctx, tracing.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: version,
		Environment:    cfg.App.Env,
		Endpoint:       cfg.Tracing.Endpoint,
		SampleRate:     cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warnw("tracer shutdown failed", "error", err)
		}
	}()

	// --- Database ---
	pool, err := postgres.NewPool(ctx, poolConfig(cfg.Database, cfg.App.Name))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	postgres.LogPoolStats(ctx, pool.Pool)

	txm := postgres.NewTxManager(pool, cfg.Database.StatementTimeout)

	// --- Metrics ---
	var registry *metrics.Registry
	if cfg.Metrics.Enabled {
		registry = metrics.NewRegistry()
	}

	// --- Produto service ---
	svcOpts := produto.Options{
		TxManager:      txm,
		MinQueryLength: cfg.Search.MinQueryLength,
	}
	// Leave interface fields untyped-nil when disabled
	if cfg.Search.Snapshot {
		svcOpts.Snapshot = txm
	}
	if registry != nil {
		svcOpts.Recorder = registry
	}
	produtoService := produto.NewService(catalog_repo.NewProdutoRepo(txm), svcOpts)

	// --- Router ---
	routerCfg := v1.RouterConfig{
		BasePath:       cfg.HTTP.BasePath,
		AllowOrigins:   cfg.CORS.AllowOrigins,
		Logger:         log,
		Health:         handlers.NewHealthHandler(pool, cfg.App.Name, version),
		ProdutoService: produtoService,
	}
	if registry != nil {
		routerCfg.Metrics = registry
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.MetricsHandler = registry.Handler()
	}

	var handler http.Handler = v1.NewRouter(routerCfg)
	if cfg.HTTP.Compression {
		handler = gzhttp.GzipHandler(handler)
	}

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"addr", server.Addr,
			"base_path", cfg.HTTP.BasePath,
			"snapshot_search", cfg.Search.Snapshot,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// --- Graceful shutdown ---
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	postgres.LogPoolStats(shutdownCtx, pool.Pool)
	log.Info("server stopped")
	return nil
}
