package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pysugar/kreuzungen-auth/internal/auth/strava"
	"github.com/pysugar/kreuzungen-auth/internal/config"
	"github.com/pysugar/kreuzungen-auth/internal/feature"
	"github.com/pysugar/kreuzungen-auth/internal/kv"
	"github.com/pysugar/kreuzungen-auth/internal/logging"
	"github.com/pysugar/kreuzungen-auth/internal/metrics"
	"github.com/pysugar/kreuzungen-auth/internal/names"
	"github.com/pysugar/kreuzungen-auth/internal/server"
	"github.com/pysugar/kreuzungen-auth/internal/version"
)

const shutdownTimeout = 10 * time.Second

type rootOptions struct {
	configPath string
	listenAddr string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "kreuzungen-auth",
		Short: "Strava OAuth token exchange proxy and GeoJSON feature store",
		Long: `kreuzungen-auth exchanges Strava authorization codes for tokens, keeps each
athlete's refresh token in a key-value store, and stores shared GeoJSON
features under friendly names.

Required environment: STRAVA_API_CLIENT_SECRET, STRAVA_CLIENT_ID,
FRONTEND_HOST_URL, REDIS_URL.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "optional YAML config file; environment overrides it")
	cmd.Flags().StringVar(&opts.listenAddr, "listen", "", "listen address (default "+config.DefaultListenAddr+")")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

func run(ctx context.Context, opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath, os.Getenv)
	if err != nil {
		return err
	}
	if opts.listenAddr != "" {
		cfg.ListenAddr = opts.listenAddr
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := kv.Open(ctx, cfg.StoreURL, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	m := metrics.New()
	handler := server.NewRouter(server.Deps{
		Config:   cfg,
		Tokens:   strava.NewClient(cfg, store, logger, strava.WithMetrics(m)),
		Features: feature.NewService(store, names.New(), m),
		Store:    store,
		Logger:   logger,
		Metrics:  m,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("kreuzungen-auth starting",
			zap.String("addr", cfg.ListenAddr),
			zap.String("version", version.Version),
			zap.String("frontend", cfg.FrontendURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
