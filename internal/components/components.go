package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hyperapp/internal/api"
	"hyperapp/internal/api/handlers/http/system"
	"hyperapp/internal/config"
	"hyperapp/internal/metrics"
	"hyperapp/internal/redis"
	"hyperapp/internal/service"
	"hyperapp/internal/storage/postgres"
	"hyperapp/internal/workers"
	"hyperapp/pkg/logger"
)

const notificationsQueueKey = "notifications:queue"

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Queue      *redis.NotificationQueue
	Sender     *service.NotificationSender
	Lifecycle  *workers.LifecycleWorker
	Monitor    *service.Monitor
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	kv := redis.NewKVStore(redisClient)
	queue := redis.NewNotificationQueue(redisClient.Client, notificationsQueueKey)
	notifier := service.NewQueueNotifier(queue, logger)

	collector, err := metrics.NewCollector()
	if err != nil {
		return nil, fmt.Errorf("failed to init metrics: %w", err)
	}

	zoneSvc := service.NewZoneService(ctx, kv, logger)
	eventLog := service.NewEventLogService(ctx, kv, logger)
	monitor := service.NewMonitor(zoneSvc, eventLog, notifier, collector, logger, cfg.Monitor.Cooldown)
	relevanceSvc := service.NewRelevanceService(storage.Alerts(), logger,
		cfg.Monitor.DefaultRadiusKm, cfg.Monitor.VibeRadiusKm)
	alertSvc := service.NewAlertService(storage.Alerts(), notifier, logger, cfg.Lifecycle.MaxReportAge)
	lifecycleSvc := service.NewLifecycleService(storage.Alerts(), storage.Histories(),
		collector, logger, cfg.Monitor.VibeRadiusKm, cfg.Lifecycle.MaxReportAge)
	statsSvc := service.NewStatsService(storage.Stats(), zoneSvc)

	svc := service.NewService(zoneSvc, monitor, eventLog, relevanceSvc, alertSvc, lifecycleSvc, statsSvc)

	checks := []system.Check{
		{Name: "postgres", Ping: storage.Pool.Ping},
		{Name: "redis", Ping: redisClient.Ping},
	}

	httpServer := api.NewServer(cfg, logger, svc, collector, checks...)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Queue:      queue,
		Sender:     service.NewNotificationSender(logger, cfg.Notify, queue),
		Lifecycle:  workers.NewLifecycleWorker(lifecycleSvc, logger, cfg.Lifecycle.SweepInterval),
		Monitor:    monitor,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components shut down",
		slog.Duration("latency", time.Since(start)))
}
