package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	timeline_service "timeline-service/internal/application/service/timeline"
	timeline_port "timeline-service/internal/domain/ports/input/timeline"
	post_repository "timeline-service/internal/domain/ports/output/post"
	user_repository "timeline-service/internal/domain/ports/output/user"
	"timeline-service/internal/infrastructure/config"
	delivery_http "timeline-service/internal/infrastructure/inbound/http"
	health_http "timeline-service/internal/infrastructure/inbound/http/health"
	timeline_http "timeline-service/internal/infrastructure/inbound/http/timeline"
	metrics_server "timeline-service/internal/infrastructure/inbound/metrics"
	"timeline-service/internal/infrastructure/logger"
	redis_cache "timeline-service/internal/infrastructure/outbound/cache/redis"
	prometheus_metrics "timeline-service/internal/infrastructure/outbound/metrics/prometheus"
	post_memory "timeline-service/internal/infrastructure/outbound/repository/post/memory"
	post_postgres "timeline-service/internal/infrastructure/outbound/repository/post/postgres"
	"timeline-service/internal/infrastructure/outbound/repository/postgres"
	user_memory "timeline-service/internal/infrastructure/outbound/repository/user/memory"
	user_postgres "timeline-service/internal/infrastructure/outbound/repository/user/postgres"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	var (
		userRepo user_repository.Repository
		postRepo post_repository.Repository
		pingers  health_http.Pingers
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		userRepo = user_memory.NewUserRepository(log)
		postRepo = post_memory.NewPostRepository(log)
	default:
		if err := postgres.EnsureSchema(cfg.Database.URL("pgx5"), log); err != nil {
			log.Error("Failed to prepare database schema", slog.String("error", err.Error()))
			return err
		}

		pool, err := postgres.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
			return err
		}
		defer pool.Close()

		userRepo = user_postgres.NewUserRepository(pool, log, metrics)
		postRepo = post_postgres.NewPostRepository(pool, log, metrics)
		pingers = append(pingers, pool)
	}

	var service timeline_port.Service = timeline_service.NewTimelineService(userRepo, postRepo, log, metrics)

	if cfg.Redis.Enabled {
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		redisClient, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()

		timelineCache := redis_cache.NewTimelineCache(redisClient, log, cfg.Redis.TTL)
		service = timeline_service.NewTimelineServiceCacheDecorator(service, timelineCache, log, metrics)
		pingers = append(pingers, redisClient)
	}

	metrics.SetServiceHealth(true)

	timelineAPI := timeline_http.NewTimelineHTTPService(service, log)
	httpServer := delivery_http.NewServer(timelineAPI, health_http.NewHandler(pingers, log), cfg.HTTPServer, log, metrics)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	var metricsServer *metrics_server.MetricsServer
	metricsDone := make(chan bool, 1)
	if cfg.Prometheus.Enabled {
		metricsServer = metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)
		go func() {
			if err := metricsServer.Run(); err != nil {
				log.Error("Metrics server error", slog.String("error", err.Error()))
			}
			metricsDone <- true
		}()
	} else {
		metricsDone <- true
	}

	select {
	case <-quit:
	case <-done:
		done <- true
	}
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
		}
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
	return nil
}
