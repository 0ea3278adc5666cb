package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"foresight/internal/forecast"
	forecastmetrics "foresight/internal/forecast/metrics"
	"foresight/internal/forecast/service"
	"foresight/internal/forecast/store/cache"
	"foresight/internal/platform/config"
	"foresight/internal/platform/httpserver"
	"foresight/internal/platform/logger"
	"foresight/internal/platform/metrics"
	"foresight/internal/platform/redis"
	httptransport "foresight/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(forecastmetrics.New(prometheus.DefaultRegisterer)),
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	if c := buildCache(cfg, redisClient, log); c != nil {
		opts = append(opts, service.WithCache(c, cfg.Cache.TTL))
	}

	svc := forecast.NewService(opts...)
	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Metrics:  metrics.New(prometheus.DefaultRegisterer),
		Gatherer: prometheus.DefaultGatherer,
		Modules:  []httptransport.Registrar{forecast.NewHandler(svc, log)},
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting foresight", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildCache prefers Redis when configured and falls back to process memory.
func buildCache(cfg config.Server, client *redis.Client, log *slog.Logger) service.Cache {
	if !cfg.Cache.Enabled {
		log.Info("derived metric cache disabled")
		return nil
	}
	if client != nil {
		log.Info("derived metric cache backed by redis")
		return cache.NewRedis(client.Client, cache.DefaultKeyPrefix)
	}
	log.Info("derived metric cache in process memory")
	return cache.NewInMemory()
}
